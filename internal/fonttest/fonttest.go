// seehuhn.de/go/fontedit - a tool for editing the "name" table of font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package fonttest provides font fixtures for use in unit tests.
package fonttest

import (
	"encoding/binary"

	"seehuhn.de/go/fontedit"
	"seehuhn.de/go/fontedit/header"
	"seehuhn.de/go/fontedit/name"
)

// NewTable builds a name table with one canonical record for each of
// the given fields.
func NewTable(fields map[name.ID]string) *name.Table {
	t := name.New()
	for id, text := range fields {
		t.Set(id, text)
	}
	return t
}

// MakeFont builds a skeleton TrueType font with the given naming
// records.  The font has just enough structure ("head" and "maxp"
// filler tables) to survive a write/read round trip; it contains no
// glyphs and is not usable for rendering.
func MakeFont(fields map[name.ID]string) *fontedit.Font {
	head := make([]byte, 54)
	binary.BigEndian.PutUint32(head, 0x00010000)      // table version 1.0
	binary.BigEndian.PutUint32(head[12:], 0x5F0F3CF5) // magic number
	binary.BigEndian.PutUint16(head[18:], 1000)       // unitsPerEm

	maxp := make([]byte, 6)
	binary.BigEndian.PutUint32(maxp, 0x00005000) // version 0.5

	return &fontedit.Font{
		ScalerType: header.ScalerTypeTrueType,
		Tables: map[string][]byte{
			"head": head,
			"maxp": maxp,
		},
		Names: NewTable(fields),
	}
}
