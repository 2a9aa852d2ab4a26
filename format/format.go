/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package format identifies PrefLib file formats.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents a PrefLib data format.
type Format int

const (
	// Unknown represents an undetected or unrecognized format.
	Unknown Format = iota

	// SOC holds strict orders over the complete alternative set.
	SOC

	// SOI holds strict orders over subsets of the alternatives.
	SOI

	// TOC holds orders with ties over the complete alternative set.
	TOC

	// TOI holds orders with ties over subsets of the alternatives.
	TOI

	// CAT holds categorical preferences.
	CAT

	// WMD holds weighted matching graphs.
	WMD
)

// String returns the canonical file extension for the format, without the dot.
func (f Format) String() string {
	switch f {
	case SOC:
		return "soc"
	case SOI:
		return "soi"
	case TOC:
		return "toc"
	case TOI:
		return "toi"
	case CAT:
		return "cat"
	case WMD:
		return "wmd"
	default:
		return "unknown"
	}
}

// Description returns a human-readable name for the format.
func (f Format) Description() string {
	switch f {
	case SOC:
		return "strict orders, complete"
	case SOI:
		return "strict orders, incomplete"
	case TOC:
		return "orders with ties, complete"
	case TOI:
		return "orders with ties, incomplete"
	case CAT:
		return "categorical preferences"
	case WMD:
		return "weighted matching graph"
	default:
		return "unknown format"
	}
}

// Family returns the reader family that parses the format.
func (f Format) Family() Family {
	switch f {
	case SOC, SOI, TOC, TOI:
		return FamilyOrdinal
	case CAT:
		return FamilyCategorical
	case WMD:
		return FamilyMatching
	default:
		return FamilyUnknown
	}
}

// Family groups formats by the reader that handles them.
type Family int

const (
	// FamilyUnknown represents an unrecognized format family.
	FamilyUnknown Family = iota

	// FamilyOrdinal covers the four ranking formats (SOC, SOI, TOC, TOI).
	FamilyOrdinal

	// FamilyCategorical covers CAT.
	FamilyCategorical

	// FamilyMatching covers WMD.
	FamilyMatching
)

// String returns the name of the format family.
func (f Family) String() string {
	switch f {
	case FamilyOrdinal:
		return "ordinal"
	case FamilyCategorical:
		return "categorical"
	case FamilyMatching:
		return "matching"
	default:
		return "unknown"
	}
}

// FromString returns the format matching a file extension, with or
// without the leading dot.
func FromString(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "soc":
		return SOC, nil
	case "soi":
		return SOI, nil
	case "toc":
		return TOC, nil
	case "toi":
		return TOI, nil
	case "cat":
		return CAT, nil
	case "wmd":
		return WMD, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FromPath returns the format for a file path based on its extension.
// Detection is purely lexical; the file is never opened.
func FromPath(path string) (Format, error) {
	f, err := FromString(filepath.Ext(path))
	if err != nil {
		return Unknown, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	return f, nil
}
