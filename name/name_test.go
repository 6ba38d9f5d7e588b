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
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	t1 := New()
	t1.Set(Subfamily, "Bold")
	t1.Set(Version, "Version 1.000")
	// two variants for the family name, in the order Encode uses
	t1.Records[Family] = []*Record{
		{
			PlatformID: PlatformMacintosh,
			EncodingID: EncodingMacRoman,
			LanguageID: LanguageMacEnglish,
			Value:      []byte("Test Family"),
		},
		{
			PlatformID: PlatformWindows,
			EncodingID: EncodingWindowsBMP,
			LanguageID: LanguageWindowsEnUS,
			Value:      []byte{0, 'T', 0, 'e', 0, 's', 0, 't'},
		},
	}

	buf := t1.Encode()
	t2, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(t1, t2); d != "" {
		t.Errorf("table differs: (-got +want)\n%s", d)
	}
}

func TestEncodeSharesStorage(t *testing.T) {
	t1 := New()
	t1.Set(Family, "Twins")
	t1.Set(TypographicFamily, "Twins")

	buf := t1.Encode()
	// header + 2 records + one shared copy of the UTF-16 string
	want := 6 + 2*12 + 2*len("Twins")
	if len(buf) != want {
		t.Errorf("wrong table size %d, expected %d", len(buf), want)
	}
}

func TestSetCollapsesVariants(t *testing.T) {
	t1 := New()
	for _, lang := range []uint16{0x0407, 0x0409, 0x040C} {
		t1.Records[Subfamily] = append(t1.Records[Subfamily], &Record{
			PlatformID: PlatformWindows,
			EncodingID: EncodingWindowsBMP,
			LanguageID: lang,
			Value:      []byte{0, 'X'},
		})
	}

	t1.Set(Subfamily, "Bold")

	recs := t1.Records[Subfamily]
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.PlatformID != PlatformWindows ||
		rec.EncodingID != EncodingWindowsBMP ||
		rec.LanguageID != LanguageWindowsEnUS {
		t.Errorf("wrong variant %d/%d/0x%04X",
			rec.PlatformID, rec.EncodingID, rec.LanguageID)
	}
	if s, _ := rec.Text(); s != "Bold" {
		t.Errorf("wrong text %q", s)
	}
}

func TestSetEmptyDeletes(t *testing.T) {
	t1 := New()
	t1.Set(Trademark, "TM")
	t1.Set(Trademark, "")
	if n := t1.Count(Trademark); n != 0 {
		t.Errorf("expected no records, got %d", n)
	}
	// an empty value must not leave a zero-length record behind
	if _, ok := t1.Records[Trademark]; ok {
		t.Error("empty record slice left in table")
	}
}

func TestGetPrefersCanonical(t *testing.T) {
	t1 := New()
	t1.Records[Family] = []*Record{
		{
			PlatformID: PlatformMacintosh,
			EncodingID: EncodingMacRoman,
			LanguageID: LanguageMacEnglish,
			Value:      []byte("mac name"),
		},
		{
			PlatformID: PlatformWindows,
			EncodingID: EncodingWindowsBMP,
			LanguageID: LanguageWindowsEnUS,
			Value:      []byte{0, 'w', 0, 'i', 0, 'n'},
		},
	}
	s, ok := t1.Get(Family)
	if !ok || s != "win" {
		t.Errorf("got %q, %t", s, ok)
	}
}

func TestMacRoman(t *testing.T) {
	rec := &Record{
		PlatformID: PlatformMacintosh,
		EncodingID: EncodingMacRoman,
		LanguageID: LanguageMacEnglish,
		Value:      []byte{'C', 'a', 'f', 0x8E},
	}
	s, err := rec.Text()
	if err != nil {
		t.Fatal(err)
	}
	if s != "Café" {
		t.Errorf("got %q", s)
	}

	err = rec.SetText("Café Bold")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{'C', 'a', 'f', 0x8E, ' ', 'B', 'o', 'l', 'd'}
	if d := cmp.Diff(rec.Value, want); d != "" {
		t.Errorf("wrong bytes: (-got +want)\n%s", d)
	}
}

func TestBadRecords(t *testing.T) {
	odd := &Record{
		PlatformID: PlatformWindows,
		EncodingID: EncodingWindowsBMP,
		Value:      []byte{0, 'a', 0},
	}
	if _, err := odd.Text(); err == nil {
		t.Error("expected error for odd UTF-16 length")
	}

	shiftJIS := &Record{
		PlatformID: PlatformWindows,
		EncodingID: 2,
		Value:      []byte{0x82, 0xA0},
	}
	if _, err := shiftJIS.Text(); err == nil {
		t.Error("expected error for unsupported encoding")
	}
	if err := shiftJIS.SetText("x"); err == nil {
		t.Error("expected error for unsupported encoding")
	}
}

func TestDecodeVersion1(t *testing.T) {
	// version 1 table with one record and one language tag record
	text := []byte{0, 'G', 0, 'o'}
	tag := []byte{0, 'd', 0, 'e'}
	storageOffset := 6 + 12 + 2 + 4
	buf := make([]byte, storageOffset, storageOffset+len(text)+len(tag))
	binary.BigEndian.PutUint16(buf, 1)                      // version
	binary.BigEndian.PutUint16(buf[2:], 1)                  // count
	binary.BigEndian.PutUint16(buf[4:], uint16(storageOffset))
	rec := buf[6:]
	binary.BigEndian.PutUint16(rec, PlatformWindows)
	binary.BigEndian.PutUint16(rec[2:], EncodingWindowsBMP)
	binary.BigEndian.PutUint16(rec[4:], LanguageWindowsEnUS)
	binary.BigEndian.PutUint16(rec[6:], uint16(Family))
	binary.BigEndian.PutUint16(rec[8:], uint16(len(text)))
	binary.BigEndian.PutUint16(rec[10:], 0)
	binary.BigEndian.PutUint16(buf[6+12:], 1) // langTagCount
	binary.BigEndian.PutUint16(buf[6+12+2:], uint16(len(tag)))
	binary.BigEndian.PutUint16(buf[6+12+4:], uint16(len(text)))
	buf = append(buf, text...)
	buf = append(buf, tag...)

	t1, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := t1.Get(Family); !ok || s != "Go" {
		t.Errorf("got %q, %t", s, ok)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := [][]byte{
		{},
		{0, 0, 0},
		{0, 2, 0, 0, 0, 6},       // version 2
		{0, 0, 0, 1, 0, 6},       // truncated record
		{0, 0, 0, 0, 0xFF, 0xFF}, // storage offset past end of data
	}
	for i, in := range cases {
		if _, err := Decode(in); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}
