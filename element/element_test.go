//
// Copyright 2025 Google LLC. All rights reserved.
//
// screen-qa is licensed under the Apache License Version 2.0.
//

package element

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/google-research-datasets/screen-qa/geometry"
)

func el(content string, ymin, xmin, ymax, xmax float64) Element[string] {
	return Element[string]{Box: geometry.NewBox(ymin, xmin, ymax, xmax), Content: content}
}

// TestMatch_RequiresBothConditions verifies that content equality and
// geometric overlap are each necessary.
func TestMatch_RequiresBothConditions(t *testing.T) {
	a := el("btn", 0, 0, 1, 1)
	assert.True(t, Match(a, el("btn", 0, 0, 1, 1), 0.1))
	assert.False(t, Match(a, el("link", 0, 0, 1, 1), 0.1), "content mismatch with perfect overlap")
	assert.False(t, Match(a, el("btn", 5, 5, 6, 6), 0.1), "equal content without overlap")
}

// TestMatch_ThresholdIsInclusive verifies the boundary of the IoU
// threshold.
func TestMatch_ThresholdIsInclusive(t *testing.T) {
	a := el("btn", 0, 0, 2, 2)
	b := el("btn", 1, 1, 3, 3) // IoU 1/7.
	assert.True(t, Match(a, b, 1.0/7.0))
	assert.False(t, Match(a, b, 1.0/7.0+1e-9))
}

// TestBoxScore verifies geometry-only scoring ignores content.
func TestBoxScore(t *testing.T) {
	assert.InDelta(t, 1.0, BoxScore(el("btn", 0, 0, 1, 1), el("link", 0, 0, 1, 1)), 1e-12)
	assert.Zero(t, BoxScore(el("btn", 0, 0, 1, 1), el("btn", 5, 5, 6, 6)))
}

// TestContentGatedBoxScore verifies that content inequality zeroes the
// score regardless of overlap.
func TestContentGatedBoxScore(t *testing.T) {
	assert.InDelta(t, 1.0, ContentGatedBoxScore(el("btn", 0, 0, 1, 1), el("btn", 0, 0, 1, 1)), 1e-12)
	assert.Zero(t, ContentGatedBoxScore(el("btn", 0, 0, 1, 1), el("link", 0, 0, 1, 1)))
}

// TestExactMatch_Positional verifies strict order-sensitive matching.
func TestExactMatch_Positional(t *testing.T) {
	a := el("a", 0, 0, 1, 1)
	b := el("b", 2, 2, 3, 3)

	assert.True(t, ExactMatch([]Element[string]{a, b}, []Element[string]{a, b}, 0.1))
	assert.False(t, ExactMatch([]Element[string]{a, b}, []Element[string]{b, a}, 0.1),
		"same elements in a different order")
	assert.False(t, ExactMatch([]Element[string]{a, b}, []Element[string]{a}, 0.1))
	assert.True(t, ExactMatch[string](nil, nil, 0.1))
	assert.False(t, ExactMatch[string](nil, []Element[string]{a}, 0.1))
}
