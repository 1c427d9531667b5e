// Package scene is the dependency graph of a dynamic-geometry document.
//
// Free points, lines and conics are placed by the user. Constructions derive
// new objects from existing ones and observe their inputs. Every mutation of
// an object (Move, Rename, Destroy) is announced synchronously to its
// observers through the three events Moved, Renamed and GoingToBeDestroyed:
//
//   - Moved propagates as a wave. Affected constructions are ordered
//     topologically and each one recomputes exactly once per wave, after all
//     of its affected inputs. A construction whose formula has no value
//     becomes Degenerate and still announces Moved, so its dependents degrade
//     as well.
//   - Renamed updates the Dictionary first and is then announced. Constructions
//     hold their inputs by reference and ignore it.
//   - GoingToBeDestroyed is announced before the object leaves the Dictionary.
//     Every construction depending on it is destroyed in turn, so nothing
//     outlives an input it can no longer recompute from.
//
// A Scene is not safe for concurrent use. All calls, including the observer
// callbacks it makes, run on one goroutine; package workspace serialises
// access for concurrent callers.
package scene
