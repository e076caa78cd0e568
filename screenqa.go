//
// Copyright 2025 Google LLC. All rights reserved.
//
// screen-qa is licensed under the Apache License Version 2.0.
//

// Package screenqa computes ScreenQA answer-matching metrics: SQA-S for
// free-text answers, SQA-UIC for lists of UI element values, and
// SQA-UIC-BB for lists of UI elements with bounding boxes. Each metric
// scores one prediction against the set of acceptable ground-truth
// answers of a single example; calls are pure and independent of each
// other.
package screenqa

import (
	"slices"
	"strings"

	"github.com/google-research-datasets/screen-qa/answer"
	"github.com/google-research-datasets/screen-qa/element"
	"github.com/google-research-datasets/screen-qa/match"
)

// NoAnswer is the reserved text answer meaning the question is
// unanswerable. List-typed predictions use the empty list instead.
const NoAnswer = answer.NoAnswer

// TextScore holds SQA-S metrics for one prediction.
type TextScore struct {
	// ExactMatch is 1 when the normalized prediction equals some
	// normalized ground truth, and 0 otherwise.
	ExactMatch float64
	// F1 is the best token-overlap F1 against any ground truth.
	F1 float64
}

// ElementListScore holds SQA-UIC metrics for one prediction.
type ElementListScore struct {
	// ExactMatch is 1 when the prediction equals some ground-truth list,
	// and 0 otherwise.
	ExactMatch float64
	// F1 is the best assignment F1 against any ground truth.
	F1 float64
}

// BoxedElementScore holds SQA-UIC-BB metrics for one prediction.
type BoxedElementScore struct {
	// BBoxF1 is the best geometry-only assignment F1 at the IoU
	// threshold, ignoring element content.
	BBoxF1 float64
	// ExactMatch is 1 when the prediction matches some ground truth
	// pairwise in order at the IoU threshold, and 0 otherwise.
	ExactMatch float64
	// F1 is the best assignment F1 at the IoU threshold, requiring equal
	// content before geometry counts.
	F1 float64
}

// TextMetrics computes SQA-S metrics for a free-text prediction against
// its ground truths, after SQuAD-style normalization of both sides. A
// NoAnswer prediction scores perfectly when any ground truth is NoAnswer
// and zero otherwise; NoAnswer ground truths never take part in content
// comparison.
func TextMetrics(prediction string, groundTruths []string) TextScore {
	if prediction == NoAnswer {
		if slices.Contains(groundTruths, NoAnswer) {
			return TextScore{ExactMatch: 1, F1: 1}
		}
		return TextScore{}
	}
	var candidates []string
	for _, groundTruth := range groundTruths {
		if groundTruth != NoAnswer {
			candidates = append(candidates, groundTruth)
		}
	}
	if len(candidates) == 0 {
		return TextScore{}
	}
	normalized := answer.Normalize(prediction)
	tokens := strings.Fields(normalized)
	var score TextScore
	for _, groundTruth := range candidates {
		normalizedTruth := answer.Normalize(groundTruth)
		if normalizedTruth == normalized {
			score.ExactMatch = 1
		}
		f1 := match.Multiset(tokens, strings.Fields(normalizedTruth)).F1
		score.F1 = max(score.F1, f1)
	}
	return score
}

// ElementListMetrics computes SQA-UIC metrics for a prediction given as
// a list of UI element values compared by equality. The empty list is
// the no-answer form for list-typed answers.
func ElementListMetrics[T comparable](prediction []T, groundTruths [][]T) ElementListScore {
	if len(prediction) == 0 {
		if anyEmpty(groundTruths) {
			return ElementListScore{ExactMatch: 1, F1: 1}
		}
		return ElementListScore{}
	}
	candidates := nonEmpty(groundTruths)
	if len(candidates) == 0 {
		return ElementListScore{}
	}
	var score ElementListScore
	for _, groundTruth := range candidates {
		if slices.Equal(prediction, groundTruth) {
			score.ExactMatch = 1
		}
		f1 := match.Assignment(prediction, groundTruth, equalScore[T], 1).F1
		score.F1 = max(score.F1, f1)
	}
	return score
}

// BoxedElementMetrics computes SQA-UIC-BB metrics for a prediction given
// as a list of UI elements with bounding boxes. BBoxF1 considers
// geometry only, F1 requires equal content before geometry counts, and
// ExactMatch is strict positional matching. The same IoU threshold
// applies to all three components; it defaults to DefaultIoUThreshold
// and is set with WithIoUThreshold.
func BoxedElementMetrics[T comparable](prediction []element.Element[T],
	groundTruths [][]element.Element[T], opt ...Option) BoxedElementScore {
	opts := newOptions(opt...)
	if len(prediction) == 0 {
		if anyEmpty(groundTruths) {
			return BoxedElementScore{BBoxF1: 1, ExactMatch: 1, F1: 1}
		}
		return BoxedElementScore{}
	}
	candidates := nonEmpty(groundTruths)
	if len(candidates) == 0 {
		return BoxedElementScore{}
	}
	var score BoxedElementScore
	for _, groundTruth := range candidates {
		bboxF1 := match.Assignment(prediction, groundTruth, element.BoxScore[T], opts.iouThreshold).F1
		score.BBoxF1 = max(score.BBoxF1, bboxF1)
		if element.ExactMatch(prediction, groundTruth, opts.iouThreshold) {
			score.ExactMatch = 1
		}
		f1 := match.Assignment(prediction, groundTruth, element.ContentGatedBoxScore[T], opts.iouThreshold).F1
		score.F1 = max(score.F1, f1)
	}
	return score
}

// anyEmpty reports whether any ground truth is the empty no-answer list.
func anyEmpty[S ~[]E, E any](groundTruths []S) bool {
	return slices.ContainsFunc(groundTruths, func(groundTruth S) bool {
		return len(groundTruth) == 0
	})
}

// nonEmpty filters out empty no-answer ground truths.
func nonEmpty[S ~[]E, E any](groundTruths []S) []S {
	var filtered []S
	for _, groundTruth := range groundTruths {
		if len(groundTruth) > 0 {
			filtered = append(filtered, groundTruth)
		}
	}
	return filtered
}

// equalScore scores a pair 1 when equal and 0 otherwise.
func equalScore[T comparable](a, b T) float64 {
	if a == b {
		return 1
	}
	return 0
}
