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

package fontedit

import (
	"io"

	"seehuhn.de/go/fontedit/header"
	"seehuhn.de/go/fontedit/name"
)

// Read reads a font from r.  The "name" table is decoded into
// Font.Names; all other tables are stored as raw bytes.  A font
// without a "name" table gets an empty name table.
func Read(r io.ReadSeeker) (*Font, error) {
	info, err := header.Read(r)
	if err != nil {
		return nil, err
	}

	f := &Font{
		ScalerType: info.ScalerType,
		Tables:     make(map[string][]byte, len(info.Toc)),
		Names:      name.New(),
	}
	for tableName := range info.Toc {
		data, err := info.ReadTableBytes(r, tableName)
		if err != nil {
			return nil, err
		}
		if tableName == "name" {
			f.Names, err = name.Decode(data)
			if err != nil {
				return nil, err
			}
			continue
		}
		f.Tables[tableName] = data
	}
	return f, nil
}
