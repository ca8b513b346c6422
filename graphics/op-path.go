// github.com/evildmp/pdfwrite - a low-level PDF writer
// Copyright (C) 2026  The pdfwrite authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package graphics

import (
	"errors"
	"fmt"
)

// This file implements the path construction and path painting operators.

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Color is an RGBA color value.
//
// Stroke and Fill accept a color.  No color operators are emitted yet;
// the parameter exists so that layout code can already pass colors through.
type Color struct {
	R, G, B, A float64
}

// MoveTo starts a new subpath at (x, y).
//
// This emits the PDF operator "m".
func (c *Canvas) MoveTo(x, y float64) {
	if c.Err != nil {
		return
	}
	_, c.Err = fmt.Fprintln(&c.buf, coord(x), coord(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This emits the PDF operator "l".
func (c *Canvas) LineTo(x, y float64) {
	if c.Err != nil {
		return
	}
	_, c.Err = fmt.Fprintln(&c.buf, coord(x), coord(y), "l")
}

// ClosePath closes the current subpath.
//
// This emits the PDF operator "h".
func (c *Canvas) ClosePath() {
	if c.Err != nil {
		return
	}
	_, c.Err = fmt.Fprintln(&c.buf, "h")
}

// LinePath appends a closed polygon through the given points.  At least one
// point is required.
func (c *Canvas) LinePath(points []Point) {
	if c.Err != nil {
		return
	}
	if len(points) == 0 {
		c.Err = errors.New("LinePath: no points")
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

// Stroke closes and strokes the current path, bracketed by save/restore.  A
// positive width sets the line width first; a nil color leaves the stroke
// color unchanged.
//
// This emits the PDF operator "s".
func (c *Canvas) Stroke(width float64, col *Color) {
	if c.Err != nil {
		return
	}
	c.SaveState()
	c.setColor(col)
	if width > 0 {
		c.LineWidth(width)
	}
	_, c.Err = fmt.Fprintln(&c.buf, "s")
	c.RestoreState()
}

// Fill fills the current path, bracketed by save/restore.  A nil color
// leaves the fill color unchanged.
//
// This emits the PDF operator "f".
func (c *Canvas) Fill(col *Color) {
	if c.Err != nil {
		return
	}
	c.SaveState()
	c.setColor(col)
	_, c.Err = fmt.Fprintln(&c.buf, "f")
	c.RestoreState()
}

// setColor accepts a color without emitting color operators.
func (c *Canvas) setColor(col *Color) {
}
