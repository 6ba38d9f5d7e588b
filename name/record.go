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

package name

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Record is one variant of a name table entry: the string data for one
// (platform, encoding, language) combination.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	Value      []byte
}

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// codec returns the text encoding used for the record's string data,
// or nil if the platform/encoding combination is not supported.
func (r *Record) codec() encoding.Encoding {
	switch r.PlatformID {
	case PlatformUnicode:
		return utf16be
	case PlatformMacintosh:
		if r.EncodingID == EncodingMacRoman {
			return charmap.Macintosh
		}
	case PlatformWindows:
		// Symbol (0), Unicode BMP (1) and Unicode full (10) all store
		// UTF-16BE string data.
		switch r.EncodingID {
		case 0, 1, 10:
			return utf16be
		}
	}
	return nil
}

// Text returns the decoded string data of the record.
func (r *Record) Text() (string, error) {
	enc := r.codec()
	if enc == nil {
		return "", &NotSupportedError{
			Feature: fmt.Sprintf("platform %d encoding %d",
				r.PlatformID, r.EncodingID),
		}
	}
	if enc == utf16be && len(r.Value)%2 != 0 {
		return "", &InvalidTableError{
			Reason: fmt.Sprintf("odd UTF-16 string length %d", len(r.Value)),
		}
	}
	s, err := enc.NewDecoder().Bytes(r.Value)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

// SetText replaces the record's string data with the given text,
// encoded for the record's own platform and encoding.  The platform,
// encoding and language IDs are left unchanged.  An error is returned
// if the record's encoding is unsupported, or if the text cannot be
// represented in it.
func (r *Record) SetText(text string) error {
	enc := r.codec()
	if enc == nil {
		return &NotSupportedError{
			Feature: fmt.Sprintf("platform %d encoding %d",
				r.PlatformID, r.EncodingID),
		}
	}
	val, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return err
	}
	r.Value = val
	return nil
}
