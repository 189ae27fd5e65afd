// Package tsp provides an exact, parallel Held–Karp solver for the
// Travelling Salesman Problem with a fixed origin at vertex 0.
//
// The DP table C[S][k] is filled bottom-up by subset size. Subsets of the
// non-origin vertices are grouped into size classes; each class is enumerated
// with Gosper's Hack into an array pre-sized from the binomial row
// T[p] = C(n-1, p), then filled in parallel:
//
//   - Enumeration: all classes concurrently, dynamically scheduled.
//   - Fill: classes strictly in increasing size, each class statically
//     partitioned across workers, with a barrier between classes.
//
// Entry points:
//
//   - Solve(dist, opts)         - any Oracle.
//   - SolveMatrix(m, opts)      - dense distance matrix (symmetric or not).
//   - SolvePoints(pts, opts)    - planar points, TSPLIB-rounded Euclidean costs.
//
// Costs are int64. Instances larger than Options.MaxVertices (default 24) or
// Options.MemoryLimit are refused with ErrInfeasibleSize before allocation.
//
//   - Complexity: O(n²·2ⁿ)
//   - Memory:     O(n·2ⁿ)
//
// Results do not depend on the worker count: every cell is computed by a
// single worker in a fixed predecessor order.
package tsp
