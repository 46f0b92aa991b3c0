// Package mapgen builds deterministic obstacle maps for path-finding benchmarks.
//
// Strategies:
//
//   - Random:    every cell is an obstacle with probability density.
//   - Clustered: ⌊size²·density/10⌋ square blobs, radius 3..8, fill 0.7.
//   - Maze:      recursive-division corridors; density is ignored.
//   - Mixed:     Random(density/2) ∪ Clustered(density/2) on seeds seed and seed+1.
//
// Guarantees:
//
//   - Determinism: the same (strategy, size, density, seed, options) always
//     yields the same grid. Every generator draws from its own *rand.Rand.
//   - Maze maps are fully connected and keep all four corners open.
//   - Random and Clustered maps may be disconnected; callers that need a
//     reachable pair must check for themselves (see grid.Connected).
//   - Fast-fail: option constructors panic on meaningless values; Generate
//     returns sentinel errors (ErrInvalidSize, ErrInvalidDensity,
//     ErrUnknownStrategy) wrapped with method context.
//
// Endpoints picks the canonical start/end pair: the first and last free
// corner, falling back to the first and last free cell in row-major order.
package mapgen
