//
// Copyright 2025 Google LLC. All rights reserved.
//
// screen-qa is licensed under the Apache License Version 2.0.
//

// Package match scores a predicted list against a reference list, either
// by multiset overlap or by an optimal one-to-one assignment under a
// pluggable pairwise score.
package match

import (
	"github.com/google-research-datasets/screen-qa/match/internal/assignment"
)

// Score holds precision, recall and F1, each in [0, 1].
type Score struct {
	// Precision is the fraction of predicted items that are matched.
	Precision float64
	// Recall is the fraction of reference items that are matched.
	Recall float64
	// F1 is the harmonic mean of precision and recall.
	F1 float64
}

// fMeasure computes the harmonic mean of precision and recall.
func fMeasure(precision, recall float64) float64 {
	if precision+recall > 0 {
		return 2 * precision * recall / (precision + recall)
	}
	return 0
}

// Multiset scores two sequences by multiset intersection: a shared item
// counts once per occurrence on both sides, order is irrelevant.
// Disjoint or empty inputs score zero.
func Multiset[T comparable](prediction, groundTruth []T) Score {
	remaining := make(map[T]int, len(groundTruth))
	for _, item := range groundTruth {
		remaining[item]++
	}
	same := 0
	for _, item := range prediction {
		if remaining[item] > 0 {
			remaining[item]--
			same++
		}
	}
	return fromMatches(same, len(prediction), len(groundTruth))
}

// Assignment scores two lists under the globally optimal one-to-one
// assignment of prediction items to ground-truth items. Pairs scoring
// below threshold are unmatchable. The assignment maximizes total
// matched score (a minimum-cost solve on negated scores), and pairings
// the solver placed only to complete the assignment are discarded before
// counting matches. Two empty lists are a vacuous perfect match; exactly
// one empty list scores zero.
func Assignment[T any](prediction, groundTruth []T, score func(a, b T) float64, threshold float64) Score {
	if len(prediction) == 0 && len(groundTruth) == 0 {
		return Score{Precision: 1, Recall: 1, F1: 1}
	}
	if len(prediction) == 0 || len(groundTruth) == 0 {
		return Score{}
	}
	scores := make([][]float64, len(prediction))
	cost := make([][]float64, len(prediction))
	for i, p := range prediction {
		scores[i] = make([]float64, len(groundTruth))
		cost[i] = make([]float64, len(groundTruth))
		for j, g := range groundTruth {
			s := score(p, g)
			if s < threshold {
				s = 0
			}
			scores[i][j] = s
			cost[i][j] = -s
		}
	}
	matches := 0
	for i, j := range assignment.Solve(cost) {
		if j != assignment.Unassigned && scores[i][j] >= threshold {
			matches++
		}
	}
	return fromMatches(matches, len(prediction), len(groundTruth))
}

// fromMatches derives a Score from a match count and the two list sizes.
func fromMatches(matches, predictionLen, groundTruthLen int) Score {
	if matches == 0 {
		return Score{}
	}
	precision := float64(matches) / float64(predictionLen)
	recall := float64(matches) / float64(groundTruthLen)
	return Score{Precision: precision, Recall: recall, F1: fMeasure(precision, recall)}
}
