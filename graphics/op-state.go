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
	"fmt"

	"seehuhn.de/go/geom/matrix"
)

// This file implements the graphics state and coordinate transformation
// operators.

// SaveState saves the graphics state.
//
// This emits the PDF operator "q".  The canvas keeps no state stack of its
// own; callers are responsible for balancing save and restore.
func (c *Canvas) SaveState() {
	if c.Err != nil {
		return
	}
	_, c.Err = fmt.Fprintln(&c.buf, "q")
}

// RestoreState restores the most recently saved graphics state.
//
// This emits the PDF operator "Q".
func (c *Canvas) RestoreState() {
	if c.Err != nil {
		return
	}
	_, c.Err = fmt.Fprintln(&c.buf, "Q")
}

// Transform multiplies the given matrix onto the current transformation
// matrix.
//
// This emits the PDF operator "cm".
func (c *Canvas) Transform(m matrix.Matrix) {
	if c.Err != nil {
		return
	}
	_, c.Err = fmt.Fprintln(&c.buf,
		coord(m[0]), coord(m[1]), coord(m[2]), coord(m[3]), coord(m[4]), coord(m[5]), "cm")
}

// Translate moves the coordinate origin to (x, y).
func (c *Canvas) Translate(x, y float64) {
	c.Transform(matrix.Translate(x, y))
}

// Scale scales the coordinate system by x horizontally and y vertically.
// Pass the same value twice for uniform scaling.
func (c *Canvas) Scale(x, y float64) {
	c.Transform(matrix.Scale(x, y))
}

// LineWidth sets the stroke line width.
//
// This emits the PDF operator "w".
func (c *Canvas) LineWidth(width float64) {
	if c.Err != nil {
		return
	}
	_, c.Err = fmt.Fprintln(&c.buf, coord(width), "w")
}
