// Package gridmap models the static maze the path searches run on.
//
// What:
//
//   - GridMap wraps a rectangular wall table with a start and an end cell.
//   - Position and Direction carry the turn arithmetic used by the cost model:
//     North.TurnsTo(East) == 1, North.TurnsTo(South) == 2.
//   - Parse/ParseString/ParseLines load the '#', '.', 'S', 'E' text format.
//   - Render prints the grid back, optionally overlaying marks on open cells.
//
// Immutability:
//
//   - A GridMap never changes after construction, so any number of searches
//     may read the same map concurrently.
//
// Complexity:
//
//   - Parse:      O(W×H), Memory: O(W×H).
//   - IsWall:     O(1).
//   - Neighbors4: O(1).
//
// Errors:
//
//   - ErrMalformedInput wraps every loader failure, together with one of
//     ErrEmptyGrid, ErrNonRectangular, ErrMissingStart, ErrDuplicateStart,
//     ErrMissingEnd, ErrDuplicateEnd.
//   - ErrOutOfBounds, ErrBlockedEndpoint: invalid arguments to New.
package gridmap
