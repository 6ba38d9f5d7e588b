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
	"time"
)

// Options is the raw configuration for one run, as collected from
// command line flags or interactive prompts.  ResolvePlan turns it
// into a Plan.
type Options struct {
	// Family is the new family name.  Empty means "do not rename".
	Family string

	// Subfamily is the new subfamily name.  Empty means "keep the
	// existing subfamily".
	Subfamily string

	// License selects predefined license texts, or Custom together
	// with CustomLicense and CustomLicenseURL.
	License          License
	CustomLicense    string
	CustomLicenseURL string

	// LicenseText and LicenseURL, if non-empty, are used verbatim and
	// take precedence over License.  The interactive mode fills in
	// these fields directly.
	LicenseText string
	LicenseURL  string

	// RemoveLicense deletes both license records.
	RemoveLicense bool

	Manufacturer Value
	Designer     Value
	Trademark    Value
	Copyright    Value
}

// Plan is the fully resolved set of edits for one run.  Transform
// consults only the plan and the font's current name table.
type Plan struct {
	// Family is the new family name, or "" to keep the current one.
	Family string

	// Subfamily is the new subfamily name.  If empty, the subfamily
	// records are kept, and the font's current subfamily is used when
	// deriving the full name and the PostScript name.
	Subfamily string

	// License is the license text/URL pair to write.  nil leaves the
	// license records unchanged; an all-empty LicenseInfo deletes them.
	License *LicenseInfo

	Manufacturer Value
	Designer     Value
	Trademark    Value
	Copyright    Value
}

// ResolvePlan resolves raw options into a plan.  It fails with a
// *ConfigError for contradictory or incomplete options; in that case
// no font data has been touched yet.
func ResolvePlan(opt *Options) (*Plan, error) {
	license, err := resolveLicense(opt)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Family:       opt.Family,
		Subfamily:    opt.Subfamily,
		License:      license,
		Manufacturer: opt.Manufacturer,
		Designer:     opt.Designer,
		Trademark:    opt.Trademark,
		Copyright:    ResolveCopyright(opt.Copyright, opt.Manufacturer),
	}
	return p, nil
}

func resolveLicense(opt *Options) (*LicenseInfo, error) {
	if opt.LicenseText != "" || opt.LicenseURL != "" {
		return &LicenseInfo{Text: opt.LicenseText, URL: opt.LicenseURL}, nil
	}
	if opt.RemoveLicense {
		return &LicenseInfo{}, nil
	}
	return ResolveLicense(opt.License, opt.CustomLicense, opt.CustomLicenseURL)
}

// for tests
var currentYear = func() int {
	return time.Now().Year()
}

// ResolveCopyright determines the copyright notice to use.  An
// explicitly supplied value (including an explicit removal) is used
// unchanged.  Otherwise, if a manufacturer name is given, a notice of
// the form "Copyright © 2026 Acme. All Rights Reserved." is
// synthesized from the manufacturer name and the current year;
// without a manufacturer the existing notice is kept.
func ResolveCopyright(copyright, manufacturer Value) Value {
	if !copyright.IsKeep() {
		return copyright
	}
	if manufacturer.IsSet() {
		notice := fmt.Sprintf("Copyright © %d %s. All Rights Reserved.",
			currentYear(), manufacturer.Text())
		return Set(notice)
	}
	return copyright
}
