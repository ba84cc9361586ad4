// Package geom provides the 2D feature primitives used to describe a
// flat machined or molded part: circles, rectangles and rounded-end
// slots, incrementally built simple polygons, and composite polygons
// that collect an exterior outline together with its interior cutouts.
//
// What:
//
//   - Point2D — millimeter coordinates with the usual vector helpers.
//   - Circle — a tessellated round hole with a fixed segment count.
//   - Square — a rectangle or rounded-end slot, optionally rotated.
//   - SimplePolygon — an open contour built point by point (or arc by
//     arc) and then locked into an immutable closed outline.
//   - Polygon — an ordered composite whose element 0 is the exterior
//     outline and whose remaining elements are interior features.
//   - Side — an explicit Right/Left/Center tag carried alongside each
//     feature name; mirroring consults the tag, never the name text.
//
// Why:
//
//   - Part generators need value-semantic features: mirroring a feature
//     must never disturb the original, and a finished composite must be
//     sealed against further mutation.
//   - Downstream serializers (OpenSCAD text, CSV/HTML reports) consume
//     only tessellated point lists and stable identity keys, so every
//     shape exposes Points() and Key().
//
// Errors:
//
//   - ErrLocked: a mutating operation was applied after Lock.
//   - ErrArcCount: an arc was requested with fewer than 2 points.
//
// All shapes are deterministic: identical construction parameters
// always tessellate to identical point lists.
package geom
