/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package dass converts canonical preference documents into DASS
// decision matrices.
package dass

import (
	"fmt"

	"bennypowers.dev/dirugim/profile"
)

// Criterion describes one scoring dimension of a decision matrix.
type Criterion struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// DecisionMaker holds one voter's score vectors, one single-element
// vector per alternative in document order.
type DecisionMaker struct {
	ID     string      `json:"id"`
	Scores [][]float64 `json:"scores"`
}

// Document is a DASS decision-matrix dataset.
type Document struct {
	Alternatives []string        `json:"alternatives"`
	Criteria     []Criterion     `json:"criteria"`
	DMs          []DecisionMaker `json:"dms"`
}

// FromDocument converts an ordinal document into a decision matrix.
// Only the ordinal family carries rankings; anything else fails with
// ErrUnsupportedConversion.
func FromDocument(doc profile.Document) (*Document, error) {
	ord, ok := doc.(*profile.Ordinal)
	if !ok {
		return nil, fmt.Errorf("%s data: %w", doc.Family(), ErrUnsupportedConversion)
	}
	return FromOrdinal(ord), nil
}

// FromOrdinal converts an ordinal document into a decision matrix.
// Every voter becomes one decision maker, scored on a single negative
// "Rank" criterion (lower is better). Tied alternatives share the
// average of the positions their group spans; alternatives a ranking
// leaves out score the worst possible rank, the alternative count. The
// voter copies of one ranking share one score matrix; IDs run DM1, DM2,
// and so on across the whole document in ranking order.
func FromOrdinal(ord *profile.Ordinal) *Document {
	maxRank := float64(len(ord.Alternatives))
	dms := []DecisionMaker{}
	counter := 1
	for _, ranking := range ord.Rankings {
		ranks := rankPositions(ranking.Order)
		scores := make([][]float64, len(ord.Alternatives))
		for i, alt := range ord.Alternatives {
			rank, ok := ranks[alt]
			if !ok {
				rank = maxRank
			}
			scores[i] = []float64{rank}
		}
		for range ranking.Voters {
			dms = append(dms, DecisionMaker{
				ID:     fmt.Sprintf("DM%d", counter),
				Scores: scores,
			})
			counter++
		}
	}
	return &Document{
		Alternatives: ord.Alternatives,
		Criteria:     []Criterion{{Name: "Rank", Type: "negative"}},
		DMs:          dms,
	}
}

// rankPositions assigns each ranked alternative its 1-based position.
// A group of k members occupies k consecutive positions and every
// member gets their average; an alternative ranked twice keeps the
// later position.
func rankPositions(order []profile.Element) map[string]float64 {
	ranks := make(map[string]float64)
	position := 1
	for _, e := range order {
		members := e.Members()
		k := len(members)
		if k == 0 {
			continue
		}
		rank := float64(position) + float64(k-1)/2
		for _, name := range members {
			ranks[name] = rank
		}
		position += k
	}
	return ranks
}
