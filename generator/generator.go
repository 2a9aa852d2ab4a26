/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generator produces synthetic ranking datasets with
// controllable expert agreement, for exercising downstream consumers of
// the canonical ranking shape.
package generator

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"bennypowers.dev/dirugim/profile"
)

// Consensus positions: where expert agreement concentrates.
const (
	// PositionUniform spreads agreement evenly over all positions.
	PositionUniform = "uniform"

	// PositionTop concentrates agreement at the head of the ranking.
	PositionTop = "top"

	// PositionBottom concentrates agreement at the tail.
	PositionBottom = "bottom"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// Config controls dataset generation.
type Config struct {
	// Alternatives is the number of objects to rank.
	Alternatives int `validate:"gte=1"`

	// Experts is the number of voters.
	Experts int `validate:"gte=1"`

	// Consensus sets expert agreement: 0 is chaos, 1 unanimity.
	Consensus float64 `validate:"gte=0,lte=1"`

	// Position is where agreement concentrates.
	Position string `validate:"oneof=uniform top bottom"`

	// Clusters is the number of opinion groups.
	Clusters int `validate:"gte=1"`

	// Balance is the population share of the first cluster; later
	// clusters split the remainder evenly.
	Balance float64 `validate:"gte=0,lte=1"`

	// Names overrides the generated A1..AN alternative names. When
	// set its length must equal Alternatives.
	Names []string

	// Seed fixes the random stream for reproducible output; nil draws
	// a fresh stream each run.
	Seed *int64
}

// DefaultConfig mirrors the command-line defaults.
func DefaultConfig() Config {
	return Config{
		Alternatives: 10,
		Experts:      20,
		Consensus:    0.5,
		Position:     PositionUniform,
		Clusters:     1,
		Balance:      0.5,
	}
}

// Meta records the parameters a dataset was generated with.
type Meta struct {
	Generator         string  `json:"generator"`
	NumAlternatives   int     `json:"num_alternatives"`
	NumExperts        int     `json:"num_experts"`
	ConsensusLevel    float64 `json:"consensus_level"`
	ConsensusPosition string  `json:"consensus_position"`
	NumClusters       int     `json:"num_clusters"`
	ClusterBalance    float64 `json:"cluster_balance"`
	Seed              *int64  `json:"seed"`
}

// Dataset is a generated ranking collection, shaped like the record an
// ordinal PrefLib file parses into.
type Dataset struct {
	Meta         Meta              `json:"metadata"`
	Alternatives []string          `json:"alternatives"`
	Rankings     []profile.Ranking `json:"rankings"`

	// Centers are the base rankings the clusters perturb around.
	Centers [][]string `json:"-"`
}

// Generator produces synthetic ranking datasets.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New validates the configuration and seeds the generator.
func New(cfg Config) (*Generator, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	if len(cfg.Names) > 0 && len(cfg.Names) != cfg.Alternatives {
		return nil, fmt.Errorf("%d alternative names required, got %d", cfg.Alternatives, len(cfg.Names))
	}
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}, nil
}

// Generate produces the dataset: one perturbed copy of the assigned
// cluster center per expert, identical results grouped with their
// multiplicity in first-seen order.
func (g *Generator) Generate() *Dataset {
	alternatives := g.alternativeNames()
	centers := g.clusterCenters(alternatives)
	assignments := g.clusterAssignments()

	counts := map[string]int{}
	orders := map[string][]string{}
	var keys []string
	for expert := 0; expert < g.cfg.Experts; expert++ {
		ranking := g.perturb(centers[assignments[expert]])
		key := strings.Join(ranking, "\x00")
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
			orders[key] = ranking
		}
		counts[key]++
	}

	rankings := make([]profile.Ranking, len(keys))
	for i, key := range keys {
		order := make([]profile.Element, len(orders[key]))
		for j, name := range orders[key] {
			order[j] = profile.Single(name)
		}
		rankings[i] = profile.Ranking{Order: order, Voters: counts[key]}
	}

	return &Dataset{
		Meta: Meta{
			Generator:         "RankingGenerator",
			NumAlternatives:   g.cfg.Alternatives,
			NumExperts:        g.cfg.Experts,
			ConsensusLevel:    g.cfg.Consensus,
			ConsensusPosition: g.cfg.Position,
			NumClusters:       g.cfg.Clusters,
			ClusterBalance:    g.cfg.Balance,
			Seed:              g.cfg.Seed,
		},
		Alternatives: alternatives,
		Rankings:     rankings,
		Centers:      centers,
	}
}

func (g *Generator) alternativeNames() []string {
	if len(g.cfg.Names) > 0 {
		return g.cfg.Names
	}
	names := make([]string, g.cfg.Alternatives)
	for i := range names {
		names[i] = fmt.Sprintf("A%d", i+1)
	}
	return names
}

// clusterCenters builds one base ranking per cluster: a shuffled
// permutation first, its reverse second, then half-swapped copies.
func (g *Generator) clusterCenters(alternatives []string) [][]string {
	base := slices.Clone(alternatives)
	g.rng.Shuffle(len(base), func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})
	centers := [][]string{base}
	for c := 1; c < g.cfg.Clusters; c++ {
		if c == 1 {
			reversed := slices.Clone(base)
			slices.Reverse(reversed)
			centers = append(centers, reversed)
			continue
		}
		center := slices.Clone(base)
		if len(base) >= 2 {
			for range len(base) / 2 {
				i, j := g.twoDistinct(len(base))
				center[i], center[j] = center[j], center[i]
			}
		}
		centers = append(centers, center)
	}
	return centers
}

// twoDistinct draws two distinct indices below n. n must be at least 2.
func (g *Generator) twoDistinct(n int) (int, int) {
	i := g.rng.Intn(n)
	j := g.rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// clusterAssignments deals experts to clusters: the first cluster takes
// the balance share, later ones split the remainder evenly, and the
// deal order is shuffled away.
func (g *Generator) clusterAssignments() []int {
	if g.cfg.Clusters == 1 {
		return make([]int, g.cfg.Experts)
	}
	assignments := make([]int, 0, g.cfg.Experts)
	remaining := g.cfg.Experts
	for c := 0; c < g.cfg.Clusters-1; c++ {
		count := remaining / (g.cfg.Clusters - c)
		if c == 0 {
			count = int(float64(g.cfg.Experts) * g.cfg.Balance)
		}
		for range count {
			assignments = append(assignments, c)
		}
		remaining -= count
	}
	for range remaining {
		assignments = append(assignments, g.cfg.Clusters-1)
	}
	g.rng.Shuffle(len(assignments), func(i, j int) {
		assignments[i], assignments[j] = assignments[j], assignments[i]
	})
	return assignments
}

// positionWeight scores how likely a swap lands at a position: higher
// means less consensus there. Position 0 is the head of the ranking.
func (g *Generator) positionWeight(position int) float64 {
	n := g.cfg.Alternatives
	pos := 0.0
	if n > 1 {
		pos = float64(position) / float64(n-1)
	}
	switch g.cfg.Position {
	case PositionTop:
		return 0.2 + 0.8*pos
	case PositionBottom:
		return 1.0 - 0.8*pos
	default:
		return 1.0
	}
}

// perturb swap-walks a copy of base. The swap budget scales the
// n*(n-1)/2 full-shuffle maximum by half the inverse consensus; 70% of
// swaps move a neighbor, the rest jump anywhere.
func (g *Generator) perturb(base []string) []string {
	result := slices.Clone(base)
	n := len(result)
	if n < 2 {
		return result
	}
	maxSwaps := n * (n - 1) / 2
	swaps := int(float64(maxSwaps) * (1 - g.cfg.Consensus) * 0.5)

	weights := make([]float64, n-1)
	total := 0.0
	for i := range weights {
		weights[i] = g.positionWeight(i)
		total += weights[i]
	}
	if total == 0 {
		return result
	}

	for range swaps {
		pos := g.weightedIndex(weights, total)
		swapPos := pos + 1
		if g.rng.Float64() >= 0.7 {
			swapPos = g.rng.Intn(n)
		}
		result[pos], result[swapPos] = result[swapPos], result[pos]
	}
	return result
}

// weightedIndex draws an index with probability proportional to its
// weight.
func (g *Generator) weightedIndex(weights []float64, total float64) int {
	target := g.rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}
