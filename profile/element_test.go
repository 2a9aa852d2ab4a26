/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package profile_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"bennypowers.dev/dirugim/profile"
)

func TestElement_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		element  profile.Element
		expected string
	}{
		{"single", profile.Single("Alice"), `"Alice"`},
		{"tie", profile.Tie("Bob", "Carol"), `["Bob","Carol"]`},
		{"one-member group", profile.Tie("Dan"), `["Dan"]`},
		{"empty group", profile.Tie(), `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.element)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(out) != tt.expected {
				t.Errorf("Marshal = %s, want %s", out, tt.expected)
			}
		})
	}
}

func TestElement_UnmarshalJSON(t *testing.T) {
	t.Run("string becomes single", func(t *testing.T) {
		var e profile.Element
		if err := json.Unmarshal([]byte(`"Alice"`), &e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.IsTie() {
			t.Error("expected single, got tie")
		}
		if got := e.Members(); !reflect.DeepEqual(got, []string{"Alice"}) {
			t.Errorf("expected [Alice], got %v", got)
		}
	})

	t.Run("array becomes group", func(t *testing.T) {
		var e profile.Element
		if err := json.Unmarshal([]byte(`["Bob","Carol"]`), &e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !e.IsTie() {
			t.Error("expected tie")
		}
		if e.Width() != 2 {
			t.Errorf("expected width 2, got %d", e.Width())
		}
	})

	t.Run("one-member array stays a group", func(t *testing.T) {
		var e profile.Element
		if err := json.Unmarshal([]byte(`["Dan"]`), &e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.IsTie() {
			t.Error("one member is not a tie")
		}
		out, err := json.Marshal(e)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != `["Dan"]` {
			t.Errorf("expected group to survive a round trip, got %s", out)
		}
	})

	t.Run("empty array", func(t *testing.T) {
		var e profile.Element
		if err := json.Unmarshal([]byte(`[]`), &e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Width() != 0 {
			t.Errorf("expected width 0, got %d", e.Width())
		}
		if got := e.Members(); got == nil || len(got) != 0 {
			t.Errorf("expected empty members, got %v", got)
		}
	})

	t.Run("number is rejected", func(t *testing.T) {
		var e profile.Element
		if err := json.Unmarshal([]byte(`7`), &e); err == nil {
			t.Error("expected error for numeric element")
		}
	})
}

func TestRanking_Members(t *testing.T) {
	r := profile.Ranking{
		Order: []profile.Element{
			profile.Single("Alice"),
			profile.Tie("Bob", "Carol"),
			profile.Tie(),
		},
		Voters: 3,
	}
	if got := r.Members(); got != 3 {
		t.Errorf("expected 3 members, got %d", got)
	}
	if !r.HasTie() {
		t.Error("expected a tie")
	}
}

func TestRanking_NoTies(t *testing.T) {
	r := profile.Ranking{
		Order: []profile.Element{
			profile.Single("Alice"),
			profile.Tie("Bob"),
		},
	}
	if r.HasTie() {
		t.Error("one-member group is not a tie")
	}
	if got := r.Members(); got != 2 {
		t.Errorf("expected 2 members, got %d", got)
	}
}
