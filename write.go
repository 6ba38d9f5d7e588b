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
)

// Write writes the binary form of the font to the given writer.
func (f *Font) Write(w io.Writer) (int64, error) {
	tableData := make(map[string][]byte, len(f.Tables)+1)
	for tableName, data := range f.Tables {
		tableData[tableName] = data
	}
	tableData["name"] = f.Names.Encode()

	return header.Write(w, f.ScalerType, tableData)
}
