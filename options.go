//
// Copyright 2025 Google LLC. All rights reserved.
//
// screen-qa is licensed under the Apache License Version 2.0.
//

package screenqa

// DefaultIoUThreshold is the default minimum IoU for two bounding boxes
// to be considered the same on-screen region.
const DefaultIoUThreshold = 0.1

// options holds configuration for boxed element scoring.
type options struct {
	// iouThreshold is the minimum IoU for box matching.
	iouThreshold float64
}

// newOptions applies functional options over the defaults.
func newOptions(opt ...Option) *options {
	opts := &options{iouThreshold: DefaultIoUThreshold}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures boxed element scoring.
type Option func(*options)

// WithIoUThreshold sets the minimum IoU for box matching.
func WithIoUThreshold(threshold float64) Option {
	return func(o *options) {
		o.iouThreshold = threshold
	}
}
