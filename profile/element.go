/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package profile

import (
	"encoding/json"
	"fmt"
)

// Element is one slot of a ranking order: either a single alternative or
// a brace-delimited tie group of alternatives sharing the position. A
// group may be empty; single-member groups are collapsed to singles by
// the order parser but survive as groups when loaded back from JSON.
type Element struct {
	single  string
	tie     []string
	grouped bool
}

// Single returns an element holding one alternative.
func Single(name string) Element {
	return Element{single: name}
}

// Tie returns an element holding a tie group. Source order is kept.
func Tie(names ...string) Element {
	if names == nil {
		names = []string{}
	}
	return Element{tie: names, grouped: true}
}

// IsTie reports whether the element ties two or more alternatives.
func (e Element) IsTie() bool {
	return e.grouped && len(e.tie) >= 2
}

// Width returns the number of alternatives the element places.
func (e Element) Width() int {
	if e.grouped {
		return len(e.tie)
	}
	return 1
}

// Members returns the alternatives the element places, in source order.
func (e Element) Members() []string {
	if e.grouped {
		return e.tie
	}
	return []string{e.single}
}

// MarshalJSON renders a single as a bare string and a group as an array.
func (e Element) MarshalJSON() ([]byte, error) {
	if e.grouped {
		return json.Marshal(e.tie)
	}
	return json.Marshal(e.single)
}

// UnmarshalJSON accepts either a bare string or an array of strings.
func (e *Element) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = Single(s)
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return fmt.Errorf("order element must be a string or an array of strings: %w", err)
	}
	*e = Tie(names...)
	return nil
}
