//
// Copyright 2025 Google LLC. All rights reserved.
//
// screen-qa is licensed under the Apache License Version 2.0.
//

// Package element defines UI elements and their pairwise match rules.
package element

import (
	"github.com/google-research-datasets/screen-qa/geometry"
)

// Element is a selected UI element: a bounding box plus opaque content
// compared by value.
type Element[T comparable] struct {
	Box     geometry.Box `json:"box"`
	Content T            `json:"content"`
}

// Match reports whether two elements denote the same UI element: equal
// content and geometric overlap at or above iouThreshold. Both
// conditions are required; content mismatch never matches regardless of
// geometry and vice versa.
func Match[T comparable](a, b Element[T], iouThreshold float64) bool {
	return a.Content == b.Content && geometry.IoU(a.Box, b.Box) >= iouThreshold
}

// BoxScore scores a pairing by geometric overlap alone, ignoring content.
func BoxScore[T comparable](a, b Element[T]) float64 {
	return geometry.IoU(a.Box, b.Box)
}

// ContentGatedBoxScore scores a pairing by geometric overlap when the
// contents are equal, and 0 otherwise.
func ContentGatedBoxScore[T comparable](a, b Element[T]) float64 {
	if a.Content != b.Content {
		return 0
	}
	return geometry.IoU(a.Box, b.Box)
}

// ExactMatch reports whether two element lists match pairwise in order.
// This is strict positional equality: both lists are expected to already
// be in canonical order, unlike the order-insensitive assignment
// scoring.
func ExactMatch[T comparable](a, b []Element[T], iouThreshold float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Match(a[i], b[i], iouThreshold) {
			return false
		}
	}
	return true
}
