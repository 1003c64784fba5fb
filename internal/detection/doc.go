// Package detection finds candidate answer bubbles in a binary map and
// clusters them into question rows.
//
// # Bubble Detection
//
// FindBubbles locates external connected foreground regions using an
// iterative flood fill, then filters them:
//
//   - Area band: regions outside [MinArea, MaxArea] are rejected. This
//     removes noise specks below the band and print rules/text blocks above
//     it.
//   - Aspect ratio: bounding boxes with width/height outside
//     [MinAspect, MaxAspect] are rejected, enforcing approximate circularity.
//
// Surviving regions become Bubble records. No per-question count is enforced
// at this stage; that happens during row grouping.
//
// # Row Grouping
//
// GroupRows sorts bubbles by vertical position and accumulates them into rows
// with a fixed pixel tolerance. This is a heuristic clustering pass, not a
// calibrated grid fit: the reference coordinate of a row is fixed at its
// first member, so a slowly drifting skew across many rows can merge or
// split rows. Callers needing skew robustness must correct the image before
// detection.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0, 0) at the
// top-left corner, X increasing rightward, Y increasing downward.
package detection
