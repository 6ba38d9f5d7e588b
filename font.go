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

// Package fontedit rewrites the "name" table of TrueType and OpenType
// font files.  A Plan describes which naming fields to overwrite,
// derive, preserve or delete; Transform applies a plan to a font's
// name table.  All other font tables are carried through unchanged.
package fontedit

import (
	"os"

	"seehuhn.de/go/fontedit/name"
)

// Font is a TrueType or OpenType font with its "name" table decoded.
// All other tables are kept as uninterpreted bytes.
type Font struct {
	ScalerType uint32
	Tables     map[string][]byte
	Names      *name.Table
}

// ReadFile reads a font from the named file.
func ReadFile(fname string) (*Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Read(fd)
}

// WriteFile writes the font to the named file.
func (f *Font) WriteFile(fname string) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	_, err = f.Write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
