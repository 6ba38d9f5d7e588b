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

// Package header reads and writes the table directory of sfnt font files.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff
package header

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
	"sort"

	"golang.org/x/exp/maps"
)

// The sfnt scaler types supported by this package.
const (
	ScalerTypeTrueType uint32 = 0x00010000
	ScalerTypeCFF      uint32 = 0x4F54544F // "OTTO"
	ScalerTypeApple    uint32 = 0x74727565 // "true"
)

// Record gives the location of a table within a font file.
type Record struct {
	Offset uint32
	Length uint32
}

// Info describes the table directory of a font file.
type Info struct {
	ScalerType uint32
	Toc        map[string]Record
}

// Read reads the table directory of a font file.
func Read(r io.ReadSeeker) (*Info, error) {
	fileSize, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	_, err = r.Seek(0, io.SeekStart)
	if err != nil {
		return nil, err
	}

	var buf [16]byte
	_, err = io.ReadFull(r, buf[:12])
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			err = &InvalidFontError{Reason: "file too short"}
		}
		return nil, err
	}
	scalerType := binary.BigEndian.Uint32(buf[:4])
	switch scalerType {
	case ScalerTypeTrueType, ScalerTypeCFF, ScalerTypeApple:
		// pass
	default:
		return nil, &NotSupportedError{
			Feature: fmt.Sprintf("scaler type 0x%08X", scalerType),
		}
	}
	numTables := binary.BigEndian.Uint16(buf[4:6])
	// searchRange, entrySelector and rangeShift are recomputed on
	// writing and ignored here.

	toc := make(map[string]Record, numTables)
	for i := 0; i < int(numTables); i++ {
		_, err = io.ReadFull(r, buf[:16])
		if err != nil {
			if err == io.ErrUnexpectedEOF || err == io.EOF {
				err = &InvalidFontError{Reason: "truncated table directory"}
			}
			return nil, err
		}
		tag := string(buf[:4])
		offset := binary.BigEndian.Uint32(buf[8:12])
		length := binary.BigEndian.Uint32(buf[12:16])
		if uint64(offset)+uint64(length) > uint64(fileSize) {
			return nil, &InvalidFontError{
				Reason: fmt.Sprintf("table %q extends beyond end of file", tag),
			}
		}
		toc[tag] = Record{Offset: offset, Length: length}
	}
	if len(toc) == 0 {
		return nil, &InvalidFontError{Reason: "no tables found"}
	}

	return &Info{ScalerType: scalerType, Toc: toc}, nil
}

// Has returns true if the font contains a table with the given name.
func (info *Info) Has(tableName string) bool {
	_, ok := info.Toc[tableName]
	return ok
}

// ReadTableBytes returns the un-decoded table contents.
func (info *Info) ReadTableBytes(r io.ReadSeeker, tableName string) ([]byte, error) {
	rec, ok := info.Toc[tableName]
	if !ok {
		return nil, &InvalidFontError{
			Reason: fmt.Sprintf("table %q missing", tableName),
		}
	}
	_, err := r.Seek(int64(rec.Offset), io.SeekStart)
	if err != nil {
		return nil, err
	}
	res := make([]byte, rec.Length)
	_, err = io.ReadFull(r, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Write writes a complete font file with the given tables to w.  The
// table directory is sorted by tag, tables are padded to four-byte
// boundaries, and the checksum fields (including the checksum
// adjustment in a "head" table, if present) are filled in.
func Write(w io.Writer, scalerType uint32, tables map[string][]byte) (int64, error) {
	if len(tables) == 0 {
		return 0, &InvalidFontError{Reason: "no tables to write"}
	}
	tags := maps.Keys(tables)
	sort.Strings(tags)

	numTables := len(tags)
	entrySelector := bits.Len(uint(numTables)) - 1
	searchRange := 1 << (entrySelector + 4)

	directorySize := 12 + 16*numTables
	totalSize := directorySize
	for _, tag := range tags {
		totalSize += (len(tables[tag]) + 3) &^ 3
	}

	res := make([]byte, totalSize)
	binary.BigEndian.PutUint32(res[0:], scalerType)
	binary.BigEndian.PutUint16(res[4:], uint16(numTables))
	binary.BigEndian.PutUint16(res[6:], uint16(searchRange))
	binary.BigEndian.PutUint16(res[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(res[10:], uint16(numTables*16-searchRange))

	var headOffset int
	offset := directorySize
	for i, tag := range tags {
		body := tables[tag]
		paddedLen := (len(body) + 3) &^ 3
		copy(res[offset:], body)

		if tag == "head" {
			if len(body) < 12 {
				return 0, &InvalidFontError{Reason: "head table too short"}
			}
			headOffset = offset
			// The checksum of the "head" table is computed with the
			// checksum adjustment field set to zero.
			for j := offset + 8; j < offset+12; j++ {
				res[j] = 0
			}
		}

		entry := res[12+16*i:]
		copy(entry, tag)
		binary.BigEndian.PutUint32(entry[4:], checksum(res[offset:offset+paddedLen]))
		binary.BigEndian.PutUint32(entry[8:], uint32(offset))
		binary.BigEndian.PutUint32(entry[12:], uint32(len(body)))

		offset += paddedLen
	}

	if headOffset != 0 {
		adjustment := 0xB1B0AFBA - checksum(res)
		binary.BigEndian.PutUint32(res[headOffset+8:], adjustment)
	}

	n, err := w.Write(res)
	return int64(n), err
}

// checksum returns the sum of the big-endian 32-bit words in data.
// The caller must ensure that len(data) is a multiple of four.
func checksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i+4 <= len(data); i += 4 {
		sum += binary.BigEndian.Uint32(data[i:])
	}
	return sum
}

// InvalidFontError indicates a malformed font file.
type InvalidFontError struct {
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "sfnt header: " + err.Reason
}

// NotSupportedError indicates that a font uses a feature this package
// does not implement.
type NotSupportedError struct {
	Feature string
}

func (err *NotSupportedError) Error() string {
	return "sfnt header: unsupported " + err.Feature
}
