// Package ppm writes cell data as a plain-text (P3) greyscale PPM image.
//
// Format:
//
//	P3
//	<width> <height>
//	255
//	r g b r g b ... (one line per pixel row)
//
// A cell value v is rescaled linearly from [Min, Max] to [0, 255] and
// written to all three channels. Each cell becomes a Scale×Scale block.
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kurono/percolation/grid"
)

// MaxChannel is the maximum channel value written in the header.
const MaxChannel = 255

var (
	// ErrBadShape indicates rows×cols does not match the data length or is empty.
	ErrBadShape = errors.New("ppm: data does not match rows×cols")
	// ErrBadRange indicates Max <= Min.
	ErrBadRange = errors.New("ppm: max value must exceed min value")
	// ErrBadScale indicates a scale factor below 1.
	ErrBadScale = errors.New("ppm: scale must be at least 1")
)

// Image describes the data to export.
type Image struct {
	Cells      []grid.Status // row-major
	Rows, Cols int
	Min, Max   grid.Status // values mapped to black and white
	Scale      int         // pixels per cell side
}

// FromGrid builds an Image of g with Closed as black and OpenedAndFilled as white.
func FromGrid(g *grid.Grid, scale int) Image {
	return Image{
		Cells: g.Cells(),
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Min:   grid.Closed,
		Max:   grid.OpenedAndFilled,
		Scale: scale,
	}
}

// ScaleFor returns the upscale factor that brings res cells to at least
// minRes pixels: minRes/res when res < minRes, otherwise 1.
func ScaleFor(res, minRes int) int {
	if res > 0 && res < minRes {
		return minRes / res
	}

	return 1
}

// Encode writes img to w. Values outside [Min, Max] saturate to black or white.
func Encode(w io.Writer, img Image) error {
	if img.Rows <= 0 || img.Cols <= 0 || len(img.Cells) != img.Rows*img.Cols {
		return fmt.Errorf("%dx%d with %d cells: %w", img.Rows, img.Cols, len(img.Cells), ErrBadShape)
	}
	if img.Max <= img.Min {
		return ErrBadRange
	}
	if img.Scale < 1 {
		return fmt.Errorf("scale %d: %w", img.Scale, ErrBadScale)
	}

	bw := bufio.NewWriter(w)
	height, width := img.Rows*img.Scale, img.Cols*img.Scale
	fmt.Fprintf(bw, "P3\n%d %d\n%d\n", width, height, MaxChannel)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := img.Cells[(y/img.Scale)*img.Cols+x/img.Scale]
			c := MaxChannel * int(v-img.Min) / int(img.Max-img.Min)
			c = max(0, min(c, MaxChannel))
			fmt.Fprintf(bw, "%d %d %d ", c, c, c)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteFile encodes img into the file at path, replacing any existing file.
func WriteFile(path string, img Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ppm: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(f, img)
}
