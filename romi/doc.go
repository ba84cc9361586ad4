// Package romi converts the calibrated measurement points taken from
// the Pololu Romi chassis reference drawing into the complete 2D
// feature geometry of the base plate: the exterior outline, battery
// compartment cutouts, hexagonal hole grids with their connecting
// slots, arc-distributed hole/rectangle rings, and assorted measured
// holes and rectangles, assembled into one locked composite polygon.
//
// What:
//
//   - Frame — the one-time calibration from drawing-frame inches to the
//     chassis-centered millimeter coordinate system.
//   - Frame.HoleLocate / Frame.RectangleLocate — turn a diagonal pair
//     of drawing measurements into a calibrated circle or rectangle.
//   - HexPattern — parse a textual hex-grid pattern plus slot-pair
//     codes into named anchors, hole features, and slot features.
//   - Outline — the exterior contour: two 21-point arcs joined by the
//     four straight wheel-well segments.
//   - Base.Assemble — the full composite: outline first, then battery
//     features, then every right-side feature group and its mirror.
//
// Why:
//
//   - The vendor drawing is in inches with its origin off to the lower
//     right; robot work wants millimeters centered on the axle line.
//     Every feature here flows through the same calibration frame so
//     drawing-frame constants can be copied in verbatim.
//   - The hole patterns are irregular: they dodge the castor wells and
//     battery holder and reproduce fastener irregularities measured
//     off the physical part. Those irregularities are encoded as named
//     pattern strings and skip tables, never derived.
//
// Errors:
//
//   - ErrNoOriginAnchor, ErrDuplicateOriginAnchor: a hex pattern must
//     contain exactly one 'O' origin cell.
//   - ErrUnknownAnchor: a slot pair names a letter absent from the
//     pattern.
//   - ErrOutlinePointCount, ErrOutlineRadius: outline structural
//     invariants.
//
// All generation is deterministic and single-threaded: identical
// options always produce an identical composite.
package romi
