// Package romibase turns the calibrated measurements of the Pololu
// Romi chassis reference drawing into a buildable 2D part description.
//
// What's inside:
//
//	geom/ — 2D feature primitives: circles, rectangles, rounded slots,
//	        incremental simple polygons, and locked composites
//	romi/ — the generation engine: calibration frame, locators, the
//	        hex-grid pattern parser, arc feature generators, outline
//	        builder, and the composite assembler
//	scad/ — OpenSCAD text serialization and CSV/HTML feature reports
//
// Quick start:
//
//	base := romi.NewBase(romi.DefaultOptions())
//	composite, err := base.Assemble()
//	if err != nil {
//	    // a structural invariant of the fixed calibration failed
//	}
//	scad.WriteExtruded(file, composite, 9.6)
//
// Or run the CLI: `romibase generate --out build/`.
package romibase
