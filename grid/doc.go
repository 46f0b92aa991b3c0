// Package grid treats a square matrix of cell markers as a uniform-cost,
// 4-connected graph for shortest-path search.
//
// What:
//
//   - Grid wraps a size×size matrix of Cell values (Empty, Obstacle, Start, End).
//   - Neighbors yields passable orthogonal neighbors in a fixed order (up, down, left, right).
//   - ConnectedComponents / Connected answer reachability questions by flood fill.
//   - Distances / ShortestPathLength give breadth-first step distances.
//   - Parse / String round-trip a compact text form ('.', '#', 'S', 'E').
//
// Why:
//
//   - Search engines need one shared, read-only neighbor function so that every
//     variant expands the same graph with the same tie order.
//   - Map generators and endpoint selection need cheap, bounds-checked mutation.
//
// Complexity:
//
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(size²) time and memory.
//   - Connected:           O(size²) worst case.
//   - Distances:           O(size²) time and memory.
//
// Errors:
//
//   - ErrInvalidSize: size < 1.
//   - ErrEmptyGrid / ErrNonSquare / ErrUnknownCell: malformed literal input.
//   - ErrOutOfBounds / ErrBlockedCell: invalid endpoint placement.
package grid
