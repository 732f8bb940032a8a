package engine

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/vovakirdan/color-stack/internal/core"
)

// Drawable is a visible node in world coordinates.
type Drawable struct {
	Shape  ShapeKind
	Center core.Vec   // ShapeCircle
	Radius float64    // ShapeCircle
	Frame  core.RectF // ShapeRect
	Color  core.Color
	Glyph  rune
	Z      int
}

// Each calls fn for every visible node, lowest Z first, tree order within
// the same Z.
func (w *World) Each(fn func(Drawable)) {
	var out []Drawable
	w.root.walk(func(n *node) {
		if n == w.root || n.spec.Shape == ShapeNone {
			return
		}
		p := n.worldPosition()
		d := Drawable{
			Shape: n.spec.Shape,
			Color: n.spec.Color,
			Glyph: n.spec.Glyph,
			Z:     n.spec.Z,
		}
		switch n.spec.Shape {
		case ShapeCircle:
			d.Center = p
			d.Radius = n.spec.Radius
			if d.Glyph == 0 {
				d.Glyph = '●'
			}
		case ShapeRect:
			d.Frame = n.spec.Frame.Offset(p)
			if d.Glyph == 0 {
				d.Glyph = '█'
			}
		}
		out = append(out, d)
	})

	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	for _, d := range out {
		fn(d)
	}
}

// Render rasterises the world onto dst, stretching the field over the
// whole screen. A cell is painted when its centre lies inside a shape;
// circles smaller than a cell still paint the cell holding their centre.
func (w *World) Render(dst *core.Screen) {
	cols, rows := dst.Width(), dst.Height()
	if cols == 0 || rows == 0 || w.size.W <= 0 || w.size.H <= 0 {
		return
	}
	m := cellMapper{cw: w.size.W / float64(cols), ch: w.size.H / float64(rows), rows: rows, h: w.size.H}

	w.Each(func(d Drawable) {
		switch d.Shape {
		case ShapeRect:
			c0, c1 := m.colSpan(d.Frame.X, d.Frame.MaxX())
			r0, r1 := m.rowSpan(d.Frame.Y, d.Frame.MaxY())
			for y := r0; y <= r1; y++ {
				for x := c0; x <= c1; x++ {
					dst.SetColored(x, y, d.Glyph, d.Color)
				}
			}
		case ShapeCircle:
			c0, c1 := m.colSpan(d.Center.X-d.Radius, d.Center.X+d.Radius)
			r0, r1 := m.rowSpan(d.Center.Y-d.Radius, d.Center.Y+d.Radius)
			painted := false
			for y := r0; y <= r1; y++ {
				for x := c0; x <= c1; x++ {
					cx, cy := m.center(x, y)
					if math.Hypot(cx-d.Center.X, cy-d.Center.Y) <= d.Radius {
						dst.SetColored(x, y, d.Glyph, d.Color)
						painted = true
					}
				}
			}
			if !painted {
				x, y := m.cell(d.Center)
				dst.SetColored(x, y, d.Glyph, d.Color)
			}
		}
	})

	if w.label != "" {
		x, y := m.cell(w.labelPos)
		x -= utf8.RuneCountInString(w.label) / 2
		dst.DrawTextColored(x, y, w.label, core.ColorBrightWhite)
	}
}

// cellMapper converts between world units and screen cells. Cell rows
// count down from the top while world y counts up from the bottom.
type cellMapper struct {
	cw, ch float64
	rows   int
	h      float64
}

// colSpan returns the inclusive column range whose centres lie in [x0, x1].
func (m cellMapper) colSpan(x0, x1 float64) (int, int) {
	return int(math.Ceil(x0/m.cw - 0.5)), int(math.Floor(x1/m.cw - 0.5))
}

// rowSpan returns the inclusive row range whose centres lie in [y0, y1].
func (m cellMapper) rowSpan(y0, y1 float64) (int, int) {
	return int(math.Ceil((m.h-y1)/m.ch - 0.5)), int(math.Floor((m.h-y0)/m.ch - 0.5))
}

func (m cellMapper) center(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * m.cw, m.h - (float64(row)+0.5)*m.ch
}

func (m cellMapper) cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X / m.cw)), int(math.Floor((m.h - p.Y) / m.ch))
}

// CellToWorld maps the centre of screen cell (col, row) on a cols×rows
// screen to world coordinates. It is the inverse of Render's mapping.
func CellToWorld(size core.Size, cols, rows, col, row int) core.Vec {
	if cols <= 0 || rows <= 0 {
		return core.Vec{}
	}
	m := cellMapper{cw: size.W / float64(cols), ch: size.H / float64(rows), rows: rows, h: size.H}
	x, y := m.center(col, row)
	return core.V(x, y)
}
