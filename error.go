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

package pdf

import "fmt"

// UnknownReferenceError indicates that a [Reference] was resolved against a
// document which never handed out the referenced identifier.  In a single
// writer session this means the reference belongs to a different document, or
// was constructed by hand.
type UnknownReferenceError struct {
	Ref Reference
}

func (err *UnknownReferenceError) Error() string {
	return fmt.Sprintf("unknown indirect object %d %d R",
		err.Ref.Number, err.Ref.Generation)
}
