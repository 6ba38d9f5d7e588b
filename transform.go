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
	"fmt"
	"strings"

	"seehuhn.de/go/fontedit/name"
)

// AllowedIDs is the fixed set of name IDs which survive a transform.
// Records for any other ID are dropped, whether the run touched the
// field or not.
var AllowedIDs = map[name.ID]bool{
	name.Copyright:            true,
	name.Family:               true,
	name.Subfamily:            true,
	name.UniqueID:             true,
	name.FullName:             true,
	name.Version:              true,
	name.PostScriptName:       true,
	name.Trademark:            true,
	name.Manufacturer:         true,
	name.Designer:             true,
	name.LicenseDescription:   true,
	name.LicenseURL:           true,
	name.TypographicFamily:    true,
	name.TypographicSubfamily: true,
}

// A Warning reports a name record which could not be converted.  The
// record is treated as absent and processing continues; warnings exist
// so that callers can surface this lossy fallback instead of it
// happening silently.
type Warning struct {
	ID  name.ID
	Err error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v (treating field as absent)", w.ID, w.Err)
}

// Transform applies the plan to the name table, in place.  The steps
// run in a fixed order, since later steps read the results of earlier
// ones:
//
//  1. The current subfamily ("Regular" if absent) and version string
//     are captured.
//  2. If the plan renames the font, every Family and TypographicFamily
//     record is rewritten in place, keeping its platform, encoding and
//     language.
//  3. A subfamily given in the plan replaces all Subfamily records with
//     a single canonical record.
//  4. On a rename, FullName and PostScriptName are derived from the new
//     family and the effective subfamily.
//  5. License text and URL are replaced if the plan has a license.
//  6. Manufacturer, Designer, Trademark and Copyright are set, removed
//     or kept, each according to its Value.
//  7. The captured version string is written back to the canonical
//     variant.
//  8. All records outside AllowedIDs are dropped.
//
// Transform does not fail.  Records which cannot be decoded or
// re-encoded are treated as absent and reported in the returned
// warnings.
func Transform(t *name.Table, p *Plan) []Warning {
	var warnings []Warning
	warn := func(id name.ID, err error) {
		warnings = append(warnings, Warning{ID: id, Err: err})
	}

	// step 1: capture the original subfamily and version
	subfamily, ok := t.Get(name.Subfamily)
	if !ok {
		if t.Count(name.Subfamily) > 0 {
			warn(name.Subfamily, errUndecodable)
		}
		subfamily = "Regular"
	}
	version, haveVersion := t.Get(name.Version)
	if !haveVersion && t.Count(name.Version) > 0 {
		warn(name.Version, errUndecodable)
	}

	if p.Subfamily != "" {
		subfamily = p.Subfamily
	}

	// step 2: rename family records in place
	if p.Family != "" {
		for _, id := range []name.ID{name.Family, name.TypographicFamily} {
			for _, rec := range t.Records[id] {
				err := rec.SetText(p.Family)
				if err != nil {
					warn(id, err)
				}
			}
		}
	}

	// step 3: replace the subfamily only when explicitly requested
	if p.Subfamily != "" {
		t.Set(name.Subfamily, p.Subfamily)
	}

	// step 4: derive full name and PostScript name
	if p.Family != "" {
		t.Set(name.FullName, p.Family+" "+subfamily)
		psName := strings.ReplaceAll(p.Family, " ", "") +
			"-" + strings.ReplaceAll(subfamily, " ", "")
		t.Set(name.PostScriptName, psName)
	}

	// step 5: license
	if p.License != nil {
		t.Set(name.LicenseDescription, p.License.Text)
		t.Set(name.LicenseURL, p.License.URL)
	}

	// step 6: the tri-state fields
	apply := func(id name.ID, v Value) {
		if v.IsKeep() {
			return
		}
		t.Set(id, v.Text())
	}
	apply(name.Manufacturer, p.Manufacturer)
	apply(name.Designer, p.Designer)
	apply(name.Trademark, p.Trademark)
	apply(name.Copyright, p.Copyright)

	// step 7: restore the version string
	if haveVersion {
		t.Set(name.Version, version)
	}

	// step 8: drop everything outside the allowed set
	for _, id := range t.IDs() {
		if !AllowedIDs[id] {
			t.Delete(id)
		}
	}

	return warnings
}

var errUndecodable = fmt.Errorf("no decodable record")
