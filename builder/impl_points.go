// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_points.go - planar coordinate instances for Euclidean oracles.

package builder

import "math"

// RandomPoints returns n points drawn uniformly from [0, extent)², where extent
// defaults to 1000 and is set with WithExtent.
//
// Errors: ErrTooFewVertices if n < 1; ErrNeedRandSource if no RNG was set.
//
// Complexity: O(n).
func RandomPoints(n int, opts ...BuilderOption) ([][2]float64, error) {
	if n < 1 {
		return nil, builderErrorf(MethodRandomPoints, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandomPoints, ErrNeedRandSource)
	}

	pts := make([][2]float64, n)
	for i := range pts {
		pts[i][0] = cfg.rng.Float64() * cfg.extent
		pts[i][1] = cfg.rng.Float64() * cfg.extent
	}

	return pts, nil
}

// CirclePoints returns n points evenly spaced on a circle of the given radius
// centred at (radius, radius), vertex i at angle 2πi/n. Visiting them in index
// order is an optimal tour.
//
// Errors: ErrTooFewVertices if n < 1 or radius ≤ 0.
//
// Complexity: O(n).
func CirclePoints(n int, radius float64) ([][2]float64, error) {
	if n < 1 || !(radius > 0) {
		return nil, builderErrorf(MethodCirclePoints, ErrTooFewVertices)
	}

	pts := make([][2]float64, n)
	var theta float64
	for i := range pts {
		theta = 2 * math.Pi * float64(i) / float64(n)
		pts[i][0] = radius + radius*math.Cos(theta)
		pts[i][1] = radius + radius*math.Sin(theta)
	}

	return pts, nil
}
