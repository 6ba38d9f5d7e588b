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

package fontedit_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/fontedit"
	"seehuhn.de/go/fontedit/internal/fonttest"
	"seehuhn.de/go/fontedit/name"
)

func TestRoundTrip(t *testing.T) {
	f1 := fonttest.MakeFont(map[name.ID]string{
		name.Family:    "Round Trip",
		name.Subfamily: "Regular",
		name.Version:   "Version 1.000",
	})

	buf := &bytes.Buffer{}
	_, err := f1.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := fontedit.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(f1, f2); d != "" {
		t.Errorf("font differs: (-got +want)\n%s", d)
	}
}

func TestGoRegular(t *testing.T) {
	f1, err := fontedit.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	origSubfamily, ok := f1.Names.Get(name.Subfamily)
	if !ok {
		t.Fatal("no subfamily in Go Regular")
	}
	origVersion, ok := f1.Names.Get(name.Version)
	if !ok {
		t.Fatal("no version in Go Regular")
	}

	plan, err := fontedit.ResolvePlan(&fontedit.Options{
		Family:   "Test Sans",
		License:  fontedit.OFL,
		Designer: fontedit.Set("Jane Doe"),
	})
	if err != nil {
		t.Fatal(err)
	}
	warnings := fontedit.Transform(f1.Names, plan)
	for _, w := range warnings {
		t.Logf("warning: %v", w)
	}

	buf := &bytes.Buffer{}
	_, err = f1.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := fontedit.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	// the non-name tables are carried through unchanged
	if d := cmp.Diff(f1.Tables, f2.Tables); d != "" {
		t.Errorf("tables differ: (-got +want)\n%s", d)
	}

	want := map[name.ID]string{
		name.Family:         "Test Sans",
		name.FullName:       "Test Sans " + origSubfamily,
		name.PostScriptName: "TestSans-" + origSubfamily,
		name.Version:        origVersion,
		name.Designer:       "Jane Doe",
		name.LicenseURL:     "http://scripts.sil.org/OFL",
	}
	for id, text := range want {
		if s, _ := f2.Names.Get(id); s != text {
			t.Errorf("%v: got %q, expected %q", id, s, text)
		}
	}
	for _, id := range f2.Names.IDs() {
		if !fontedit.AllowedIDs[id] {
			t.Errorf("record for %v not removed", id)
		}
	}
}
