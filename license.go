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
)

// License selects the license information to embed in a font.
type License int

// The supported license selections.
const (
	NoLicense License = iota // leave the license records unchanged
	OFL
	Apache
	MIT
	Custom
)

// ParseLicense converts a command line argument into a License.
// Matching is case-insensitive.
func ParseLicense(s string) (License, error) {
	switch strings.ToLower(s) {
	case "ofl":
		return OFL, nil
	case "apache":
		return Apache, nil
	case "mit":
		return MIT, nil
	case "custom":
		return Custom, nil
	default:
		return NoLicense, &ConfigError{
			Option: "license",
			Reason: fmt.Sprintf("unknown license %q", s),
		}
	}
}

func (l License) String() string {
	switch l {
	case NoLicense:
		return "none"
	case OFL:
		return "OFL"
	case Apache:
		return "Apache"
	case MIT:
		return "MIT"
	case Custom:
		return "Custom"
	default:
		return fmt.Sprintf("License(%d)", int(l))
	}
}

// LicenseInfo is a resolved pair of license description text and
// license information URL.  An all-empty LicenseInfo deletes both
// records.
type LicenseInfo struct {
	Text string
	URL  string
}

// The license texts are pinned here so that they do not change
// between releases of the tool.
var licenseInfo = map[License]LicenseInfo{
	OFL: {
		Text: "This Font Software is licensed under the SIL Open Font License, Version 1.1.",
		URL:  "http://scripts.sil.org/OFL",
	},
	Apache: {
		Text: "This Font Software is licensed under the Apache License, Version 2.0.",
		URL:  "http://www.apache.org/licenses/LICENSE-2.0",
	},
	MIT: {
		Text: "This Font Software is licensed under the MIT License.",
		URL:  "https://opensource.org/licenses/MIT",
	},
}

// ResolveLicense turns a license selection into the text/URL pair to
// write into the font.  For NoLicense the result is nil, meaning that
// the existing license records are left unchanged.  A Custom selection
// requires both customText and customURL; otherwise a *ConfigError is
// returned.
func ResolveLicense(l License, customText, customURL string) (*LicenseInfo, error) {
	switch l {
	case NoLicense:
		return nil, nil
	case Custom:
		if customText == "" {
			return nil, &ConfigError{
				Option: "custom-license",
				Reason: "custom license requires a license text",
			}
		}
		if customURL == "" {
			return nil, &ConfigError{
				Option: "custom-license-url",
				Reason: "custom license requires a license URL",
			}
		}
		return &LicenseInfo{Text: customText, URL: customURL}, nil
	default:
		info, ok := licenseInfo[l]
		if !ok {
			return nil, &ConfigError{
				Option: "license",
				Reason: fmt.Sprintf("unknown license %q", l),
			}
		}
		return &info, nil
	}
}

// ConfigError indicates invalid or incomplete configuration.  It is
// always reported before any font data is modified.
type ConfigError struct {
	Option string
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", err.Option, err.Reason)
}
