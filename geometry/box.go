//
// Copyright 2025 Google LLC. All rights reserved.
//
// screen-qa is licensed under the Apache License Version 2.0.
//

// Package geometry provides axis-aligned bounding boxes and overlap
// scoring.
package geometry

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidBox reports a bounding box whose minimum exceeds its maximum
// on some axis.
var ErrInvalidBox = errors.New("invalid bounding box")

// Box is an axis-aligned rectangle in a shared coordinate space, stored
// in (ymin, xmin, ymax, xmax) order. Scoring assumes YMin <= YMax and
// XMin <= XMax without checking; use Validate to guard untrusted inputs.
type Box struct {
	YMin float64 `json:"ymin"`
	XMin float64 `json:"xmin"`
	YMax float64 `json:"ymax"`
	XMax float64 `json:"xmax"`
}

// NewBox builds a box from coordinates in (ymin, xmin, ymax, xmax) order.
func NewBox(ymin, xmin, ymax, xmax float64) Box {
	return Box{YMin: ymin, XMin: xmin, YMax: ymax, XMax: xmax}
}

// Area returns the area of the box. Degenerate boxes have zero area.
func (b Box) Area() float64 {
	return (b.XMax - b.XMin) * (b.YMax - b.YMin)
}

// Validate reports every axis whose minimum exceeds its maximum. The
// returned error wraps ErrInvalidBox.
func (b Box) Validate() error {
	var result *multierror.Error
	if b.YMin > b.YMax {
		result = multierror.Append(result, fmt.Errorf("%w: ymin %v greater than ymax %v", ErrInvalidBox, b.YMin, b.YMax))
	}
	if b.XMin > b.XMax {
		result = multierror.Append(result, fmt.Errorf("%w: xmin %v greater than xmax %v", ErrInvalidBox, b.XMin, b.XMax))
	}
	return result.ErrorOrNil()
}

// IoU returns the intersection over union of two boxes in [0, 1].
// Non-overlapping boxes score 0, as does any pairing involving a
// zero-area box, a zero-area box against itself included. IoU is
// symmetric.
func IoU(a, b Box) float64 {
	ymin := max(a.YMin, b.YMin)
	xmin := max(a.XMin, b.XMin)
	ymax := min(a.YMax, b.YMax)
	xmax := min(a.XMax, b.XMax)
	intersection := max(0, xmax-xmin) * max(0, ymax-ymin)
	if intersection == 0 {
		return 0
	}
	return intersection / (a.Area() + b.Area() - intersection)
}
