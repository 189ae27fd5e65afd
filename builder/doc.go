// Package builder provides deterministic, seeded generators of TSP instances
// for tests, benchmarks and the `heldkarp gen` command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function, symmetry and extent.
//   - Edge-weight distributions (WeightFn implementations, `gen --dist`):
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – UniformIntWeightFn: integers uniform in [min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), rounded and clipped.
//   - Instance constructors:
//     – RandomMatrix:      n×n distance matrix, symmetric unless WithAsymmetric.
//     – CycleMatrix:       ring metric d(i,j)=min(|i-j|, n-|i-j|); optimum n.
//     – RandomPoints:      n points uniform in [0,extent)².
//     – CirclePoints:      n points evenly spaced on a circle.
//
// Guarantees:
//
//   - Same options and seed ⇒ identical instance.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinels (ErrTooFewVertices, ErrNeedRandSource)
//     wrapped with the constructor name.
package builder
