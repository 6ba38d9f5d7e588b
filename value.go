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

// Value describes the fate of one naming field.  The zero value means
// "keep the existing records".  An explicitly supplied empty string
// means "remove the field"; this is distinct from the field not having
// been supplied at all.
type Value struct {
	supplied bool
	text     string
}

// Keep returns a Value which leaves the existing records untouched.
func Keep() Value {
	return Value{}
}

// Set returns a Value which replaces the field with the given text.
// Set("") is the same as Remove().
func Set(text string) Value {
	return Value{supplied: true, text: text}
}

// Remove returns a Value which deletes all records for the field.
func Remove() Value {
	return Value{supplied: true}
}

// IsKeep returns true if the value leaves the field untouched.
func (v Value) IsKeep() bool {
	return !v.supplied
}

// IsRemove returns true if the value deletes the field.
func (v Value) IsRemove() bool {
	return v.supplied && v.text == ""
}

// IsSet returns true if the value replaces the field with new text.
func (v Value) IsSet() bool {
	return v.supplied && v.text != ""
}

// Text returns the replacement text.  The empty string is returned
// for Keep and Remove values.
func (v Value) Text() string {
	return v.text
}

func (v Value) String() string {
	switch {
	case v.IsKeep():
		return "<keep>"
	case v.IsRemove():
		return "<remove>"
	default:
		return v.text
	}
}
