// Package tour builds open knight's tours with Warnsdorff's rule.
//
// The knight always moves to the reachable square that has the fewest
// onward moves, taking the first such square in Offsets order on ties. The
// search is greedy: it never backtracks and stops as soon as the knight has
// no legal move, whether or not every square was reached.
//
// Complexity: at most 9 Candidates/Degree calls per move and rows×cols
// moves, so O(rows×cols) per tour. Memory: O(rows×cols).
package tour
