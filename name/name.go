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

// Package name reads and writes "name" tables.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
package name

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/maps"
)

// ID identifies a semantic field in the "name" table.
type ID uint16

// Name IDs defined by the OpenType specification.
const (
	Copyright            ID = 0
	Family               ID = 1
	Subfamily            ID = 2
	UniqueID             ID = 3
	FullName             ID = 4
	Version              ID = 5
	PostScriptName       ID = 6
	Trademark            ID = 7
	Manufacturer         ID = 8
	Designer             ID = 9
	LicenseDescription   ID = 13
	LicenseURL           ID = 14
	TypographicFamily    ID = 16
	TypographicSubfamily ID = 17
)

var idNames = map[ID]string{
	Copyright:            "Copyright",
	Family:               "Family",
	Subfamily:            "Subfamily",
	UniqueID:             "UniqueID",
	FullName:             "FullName",
	Version:              "Version",
	PostScriptName:       "PostScriptName",
	Trademark:            "Trademark",
	Manufacturer:         "Manufacturer",
	Designer:             "Designer",
	LicenseDescription:   "LicenseDescription",
	LicenseURL:           "LicenseURL",
	TypographicFamily:    "TypographicFamily",
	TypographicSubfamily: "TypographicSubfamily",
}

func (id ID) String() string {
	if s, ok := idNames[id]; ok {
		return s
	}
	return fmt.Sprintf("name ID %d", uint16(id))
}

// Platform and encoding IDs used by this package.
const (
	PlatformUnicode   uint16 = 0
	PlatformMacintosh uint16 = 1
	PlatformWindows   uint16 = 3

	EncodingMacRoman   uint16 = 0
	EncodingWindowsBMP uint16 = 1

	LanguageMacEnglish  uint16 = 0
	LanguageWindowsEnUS uint16 = 0x0409
)

// Table holds the contents of a "name" table, grouped by name ID.
// The variants for each ID are kept in table order.
type Table struct {
	Records map[ID][]*Record
}

// New returns a new, empty name table.
func New() *Table {
	return &Table{
		Records: map[ID][]*Record{},
	}
}

// Read reads a "name" table from r.
func Read(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses the binary form of a "name" table.
// Both table versions 0 and 1 are accepted.  The language tag records
// of a version 1 table are not retained.
func Decode(data []byte) (*Table, error) {
	if len(data) < 6 {
		return nil, errMalformed
	}
	version := binary.BigEndian.Uint16(data)
	if version > 1 {
		return nil, &NotSupportedError{
			Feature: fmt.Sprintf("name table version %d", version),
		}
	}
	numRec := int(binary.BigEndian.Uint16(data[2:]))
	storageOffset := int(binary.BigEndian.Uint16(data[4:]))
	recEnd := 6 + 12*numRec
	if recEnd > len(data) || storageOffset > len(data) {
		return nil, errMalformed
	}

	t := New()
	for i := 0; i < numRec; i++ {
		buf := data[6+i*12:]
		rec := &Record{
			PlatformID: binary.BigEndian.Uint16(buf),
			EncodingID: binary.BigEndian.Uint16(buf[2:]),
			LanguageID: binary.BigEndian.Uint16(buf[4:]),
		}
		nameID := ID(binary.BigEndian.Uint16(buf[6:]))
		length := int(binary.BigEndian.Uint16(buf[8:]))
		offset := int(binary.BigEndian.Uint16(buf[10:]))

		start := storageOffset + offset
		end := start + length
		if end > len(data) {
			return nil, errMalformed
		}
		rec.Value = append([]byte{}, data[start:end]...)
		t.Records[nameID] = append(t.Records[nameID], rec)
	}
	return t, nil
}

// Encode returns the binary form of the table, as a version 0 "name"
// table.  Records are sorted by name ID, platform, encoding and
// language, and identical string data is shared between records.
func (t *Table) Encode() []byte {
	type entry struct {
		id  ID
		rec *Record
	}
	var entries []entry
	for id, recs := range t.Records {
		for _, rec := range recs {
			entries = append(entries, entry{id, rec})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		ei, ej := entries[i], entries[j]
		if ei.id != ej.id {
			return ei.id < ej.id
		}
		ri, rj := ei.rec, ej.rec
		if ri.PlatformID != rj.PlatformID {
			return ri.PlatformID < rj.PlatformID
		}
		if ri.EncodingID != rj.EncodingID {
			return ri.EncodingID < rj.EncodingID
		}
		return ri.LanguageID < rj.LanguageID
	})

	numRec := len(entries)
	storageOffset := 6 + 12*numRec

	var storage []byte
	seen := map[string]int{}
	res := make([]byte, storageOffset)
	binary.BigEndian.PutUint16(res, 0) // table version
	binary.BigEndian.PutUint16(res[2:], uint16(numRec))
	binary.BigEndian.PutUint16(res[4:], uint16(storageOffset))
	for i, e := range entries {
		offset, ok := seen[string(e.rec.Value)]
		if !ok {
			offset = len(storage)
			storage = append(storage, e.rec.Value...)
			seen[string(e.rec.Value)] = offset
		}
		buf := res[6+i*12:]
		binary.BigEndian.PutUint16(buf, e.rec.PlatformID)
		binary.BigEndian.PutUint16(buf[2:], e.rec.EncodingID)
		binary.BigEndian.PutUint16(buf[4:], e.rec.LanguageID)
		binary.BigEndian.PutUint16(buf[6:], uint16(e.id))
		binary.BigEndian.PutUint16(buf[8:], uint16(len(e.rec.Value)))
		binary.BigEndian.PutUint16(buf[10:], uint16(offset))
	}
	return append(res, storage...)
}

// Get returns the decoded text for the given name ID.  The canonical
// Windows en-US variant is preferred; otherwise the first variant with
// a supported encoding is used.  The second return value is false if
// no variant could be decoded.
func (t *Table) Get(id ID) (string, bool) {
	for _, rec := range t.Records[id] {
		if rec.PlatformID != PlatformWindows ||
			rec.EncodingID != EncodingWindowsBMP ||
			rec.LanguageID != LanguageWindowsEnUS {
			continue
		}
		if s, err := rec.Text(); err == nil {
			return s, true
		}
	}
	for _, rec := range t.Records[id] {
		if s, err := rec.Text(); err == nil {
			return s, true
		}
	}
	return "", false
}

// Set replaces all variants for the given name ID with a single record
// at the canonical platform/encoding/language (Windows, Unicode BMP,
// US English).  If text is empty, all variants are removed and no new
// record is written.
func (t *Table) Set(id ID, text string) {
	delete(t.Records, id)
	if text == "" {
		return
	}
	rec := &Record{
		PlatformID: PlatformWindows,
		EncodingID: EncodingWindowsBMP,
		LanguageID: LanguageWindowsEnUS,
	}
	err := rec.SetText(text)
	if err != nil {
		// cannot happen: every Go string has a UTF-16 form
		panic(err)
	}
	t.Records[id] = []*Record{rec}
}

// Delete removes all variants for the given name ID.
func (t *Table) Delete(id ID) {
	delete(t.Records, id)
}

// Count returns the number of variants stored for the given name ID.
func (t *Table) Count(id ID) int {
	return len(t.Records[id])
}

// IDs returns the name IDs present in the table, in increasing order.
func (t *Table) IDs() []ID {
	ids := maps.Keys(t.Records)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clone makes a deep copy of the table.
func (t *Table) Clone() *Table {
	t2 := New()
	for id, recs := range t.Records {
		recs2 := make([]*Record, len(recs))
		for i, rec := range recs {
			r2 := *rec
			r2.Value = append([]byte{}, rec.Value...)
			recs2[i] = &r2
		}
		t2.Records[id] = recs2
	}
	return t2
}

var errMalformed = &InvalidTableError{Reason: "malformed name table"}

// InvalidTableError indicates that table data could not be parsed.
type InvalidTableError struct {
	Reason string
}

func (err *InvalidTableError) Error() string {
	return "name: " + err.Reason
}

// NotSupportedError indicates that a font uses a feature this package
// does not implement.
type NotSupportedError struct {
	Feature string
}

func (err *NotSupportedError) Error() string {
	return "name: unsupported " + err.Feature
}
