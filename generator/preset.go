/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generator

import (
	"maps"
	"slices"
)

// Preset bundles the config overrides for a typical scenario.
type Preset struct {
	// Description explains when to reach for the preset.
	Description string

	Consensus float64
	Position  string
	Clusters  int
	Balance   float64

	// SetsBalance marks presets that pin the cluster balance.
	SetsBalance bool
}

// Apply lays the preset over a config, keeping its population counts.
func (p Preset) Apply(cfg Config) Config {
	cfg.Consensus = p.Consensus
	cfg.Position = p.Position
	cfg.Clusters = p.Clusters
	if p.SetsBalance {
		cfg.Balance = p.Balance
	}
	return cfg
}

// Presets are the named generation scenarios.
var Presets = map[string]Preset{
	"high_consensus": {
		Description: "strong agreement, as in judged contests with a clear leader",
		Consensus:   0.9,
		Position:    PositionUniform,
		Clusters:    1,
	},
	"low_consensus": {
		Description: "weak agreement, as in matters of taste",
		Consensus:   0.2,
		Position:    PositionUniform,
		Clusters:    1,
	},
	"top_consensus": {
		Description: "agreement about the leaders, disputes further down",
		Consensus:   0.6,
		Position:    PositionTop,
		Clusters:    1,
	},
	"bottom_consensus": {
		Description: "disputed leaders, agreement about the trailers",
		Consensus:   0.6,
		Position:    PositionBottom,
		Clusters:    1,
	},
	"polarized": {
		Description: "two camps with opposite views",
		Consensus:   0.7,
		Position:    PositionUniform,
		Clusters:    2,
		Balance:     0.5,
		SetsBalance: true,
	},
	"three_factions": {
		Description: "three factions, coalition style",
		Consensus:   0.7,
		Position:    PositionUniform,
		Clusters:    3,
	},
}

// PresetNames lists the preset names in stable order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(Presets))
}
