package scad

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/chassiskit/romibase/geom"
)

// WritePolygon renders the composite as a single OpenSCAD polygon()
// call: one shared points list and one index path per shape. Element 0
// of the composite is the exterior path; OpenSCAD subtracts the
// remaining paths from it.
func WritePolygon(w io.Writer, poly *geom.Polygon) error {
	var buf bytes.Buffer
	renderPolygon(&buf, poly)
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "scad: write polygon %q", poly.Name())
	}
	return nil
}

// WriteExtruded renders the composite extruded to the given height in
// millimeters, wrapped in a union so the output is a complete, usable
// OpenSCAD program.
func WriteExtruded(w io.Writer, poly *geom.Polygon, height float64) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// %s (extruded %.3fmm)\n", poly.Name(), height)
	buf.WriteString("union() {\n")
	fmt.Fprintf(&buf, " linear_extrude(height = %.3f, convexity = 10)\n", height)
	renderPolygon(&buf, poly)
	buf.WriteString("}\n")
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "scad: write extruded polygon %q", poly.Name())
	}
	return nil
}

// renderPolygon writes the polygon() call for every shape of the
// composite.
func renderPolygon(buf *bytes.Buffer, poly *geom.Polygon) {
	fmt.Fprintf(buf, " // %s: %d paths\n", poly.Name(), poly.Len())
	buf.WriteString(" polygon(points = [\n")
	offsets := make([]int, poly.Len())
	total := 0
	for i := 0; i < poly.Len(); i++ {
		shape := poly.Shape(i)
		offsets[i] = total
		points := shape.Points()
		fmt.Fprintf(buf, "  // %s\n", shape.Name())
		for _, point := range points {
			fmt.Fprintf(buf, "  [%.6f, %.6f],\n", point.X, point.Y)
		}
		total += len(points)
	}
	buf.WriteString(" ], paths = [\n")
	for i := 0; i < poly.Len(); i++ {
		count := total - offsets[i]
		if i+1 < poly.Len() {
			count = offsets[i+1] - offsets[i]
		}
		buf.WriteString("  [")
		for j := 0; j < count; j++ {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "%d", offsets[i]+j)
		}
		buf.WriteString("],\n")
	}
	buf.WriteString(" ], convexity = 10);\n")
}
