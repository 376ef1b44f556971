package internal

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/ringcheck/internal/dbg"
	"github.com/pkg/errors"
)

// This is for debugging purposes only

// Padding around the shape so edges on the bounds stay visible
const dbgDrawPadding = 40

// Readable name for an edge, colored by whether it is part of a crossing
func (e Edge) DbgName(crossing bool) string {
	name := dbg.Name(e)
	if crossing {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

// Draw the ring into a PNG at path, with the crossing edges (if any) in red,
// then print the image to w (iTerm only).
func DbgDraw(ring Ring, crossing *Crossing, scale float64, path string, w io.Writer) error {
	if len(ring) == 0 {
		return errors.New("cannot draw an empty ring")
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range ring {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Line width is in user space, so undo the scale
	c.SetLineWidth(2 / scale)
	c.MoveTo(ring[0].X, ring[0].Y)
	for _, p := range ring[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGBA(0, 0.5, 0, 0.5)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if crossing != nil {
		c.SetLineWidth(4 / scale)
		c.SetRGB(1, 0, 0)
		for _, edge := range []Edge{crossing.A, crossing.B} {
			c.MoveTo(edge.P0.X, edge.P0.Y)
			c.LineTo(edge.P1.X, edge.P1.Y)
			c.Stroke()
		}
	}

	// Vertices, with the first one larger since that's where the ring closes
	for i, p := range ring {
		radius := 3 / scale
		if i == 0 {
			radius *= 2
		}
		c.DrawCircle(p.X, p.Y, radius)
		c.SetRGB(1, 1, 1)
		c.Fill()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "could not create image directory")
	}
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "could not save %q", path)
	}
	if w != nil {
		imgcat.CatFile(path, w)
	}
	return nil
}
