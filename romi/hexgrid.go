package romi

import (
	"fmt"
	"math"
	"unicode"

	"github.com/chassiskit/romibase/geom"
)

// The hex hole patterns are spaced 7.5mm row to row. The columns of a
// hex grid interleave at half the triangle base, and for equilateral
// triangles b = 2*h/sqrt(3), so the column pitch is rowPitch/sqrt(3).
const hexRowPitch = 7.50

// One vertical reference slot measured off the drawing (inches); it
// fixes the width shared by every hex-grid slot. Each slot's length is
// the distance between its two anchors, so only the width is measured.
const (
	hexSlotLeftXIn  = -2.437146
	hexSlotRightXIn = -2.346591
)

// hexSlotWidth returns the measured common slot width in millimeters.
func hexSlotWidth() float64 {
	return (hexSlotRightXIn - hexSlotLeftXIn) * InchesToMM
}

// HexPattern parses a textual hex-grid pattern into hole and slot
// features plus an anchor table.
//
// rows are ordered top to bottom; in each row '-' means no feature, a
// lowercase letter is an anchor that exists only as a slot end point,
// and an uppercase letter is an anchor with a real hole. Exactly one
// cell must hold the distinguished letter 'O' whose chassis-frame
// position is origin; every other anchor is placed from it on the
// fixed hex pitch. slotPairs is a list of two-letter codes; each
// yields one rounded-end slot running between the two named anchors.
//
// The returned anchor table is keyed by the literal pattern characters
// so that other feature groups can reference the same anchors.
func HexPattern(rows []string, slotPairs []string, origin geom.Point2D,
	holeDiameter float64, label string, opts Options) ([]geom.Shape, AnchorTable, error) {
	halfColumnPitch := hexRowPitch / math.Sqrt(3.0)

	// Find the grid's upper-left corner in the chassis frame from the
	// row/column of 'O'.
	var upperLeftX, upperLeftY float64
	originSeen := false
	for yIndex, row := range rows {
		for xIndex, character := range row {
			if character != 'O' {
				continue
			}
			if originSeen {
				return nil, nil, fmt.Errorf("%w: pattern %q", ErrDuplicateOriginAnchor, label)
			}
			originSeen = true
			upperLeftX = origin.X - float64(xIndex)*halfColumnPitch
			upperLeftY = origin.Y + float64(yIndex)*hexRowPitch
		}
	}
	if !originSeen {
		return nil, nil, fmt.Errorf("%w: pattern %q", ErrNoOriginAnchor, label)
	}

	shapes := make([]geom.Shape, 0, len(rows)*4)
	anchors := make(AnchorTable)
	for yIndex, row := range rows {
		y := upperLeftY - float64(yIndex)*hexRowPitch
		for xIndex, character := range row {
			if character == '-' {
				continue
			}
			center := geom.Point2D{X: upperLeftX + float64(xIndex)*halfColumnPitch, Y: y}
			anchors[character] = center

			// Lowercase anchors are slot end points only, no hole.
			if unicode.IsUpper(character) {
				base := fmt.Sprintf("%s Hex Hole (%d, %d)", label, xIndex, yIndex)
				shapes = append(shapes,
					geom.NewCircle(base, geom.SideRight, holeDiameter, opts.HoleSegments, center))
			}
		}
	}

	slotWidth := hexSlotWidth()
	cornerRadius := slotWidth / 2.0
	for _, pair := range slotPairs {
		runes := []rune(pair)
		first, ok := anchors[runes[0]]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q in pattern %q", ErrUnknownAnchor, string(runes[0]), label)
		}
		second, ok := anchors[runes[1]]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q in pattern %q", ErrUnknownAnchor, string(runes[1]), label)
		}
		center := first.Add(second).Scale(0.5)
		angle := math.Atan2(first.Y-second.Y, first.X-second.X)
		base := fmt.Sprintf("%s Slot '%s'", label, pair)
		shapes = append(shapes, geom.NewSlot(base, geom.SideRight, first.Distance(second), slotWidth,
			center, angle, cornerRadius, opts.HoleSegments))
	}

	return shapes, anchors, nil
}

// Calibration boxes of the two hex pattern origin holes (inches). The
// lower origin is the reference hole called out in the vendor guide;
// the upper origin is the hole at the meeting point of the four upper
// slots.
const (
	lowerHexX1In, lowerHexY1In = -2.454646, 1.553776
	lowerHexX2In, lowerHexY2In = -2.329091, 1.428650
	upperHexX1In, upperHexY1In = -2.749535, 5.441567
	upperHexX2In, upperHexY2In = -2.629075, 5.316441
)

// lowerHexRows is the hole/slot layout of the lower right hex pattern,
// transcribed from the vendor `.dxf`. 'O' is the reference hole;
// uppercase letters are holes, lowercase letters slot end points. A
// small half slot above 'O' on the part is not modeled.
var lowerHexRows = []string{
	"---A-B-C-D-",
	"----E-O-F-G",
	"---a-H-I-J-",
	"----K-L-M--",
	"---N-Q-----",
	"R-S---------",
}

// lowerHexSlotPairs lists the anchor pairs bracketing each lower slot.
var lowerHexSlotPairs = []string{
	"AO", "OD", "Aa", "aO", "JO", "DJ", "OL", "aL", "LJ", "aN", "NL", "RN",
}

// upperHexRows is the layout of the upper right hex pattern.
var upperHexRows = []string{
	"a------",
	"-A-O---",
	"b-B-C-c",
	"---d---",
}

// upperHexSlotPairs lists the anchor pairs bracketing each upper slot.
var upperHexSlotPairs = []string{"aO", "bO", "dO", "cO"}

// LowerHexFeatures generates the lower hex pattern. The anchor table
// is returned as well because the line-of-holes group references its
// 'S' and 'Q' anchors.
func (b *Base) LowerHexFeatures() ([]geom.Shape, AnchorTable, error) {
	origin := b.frame.HoleLocate("Lower Hex Hole", geom.SideRight,
		lowerHexX1In, lowerHexY1In, lowerHexX2In, lowerHexY2In, b.opts.HoleSegments)
	return HexPattern(lowerHexRows, lowerHexSlotPairs,
		origin.Center(), origin.Diameter(), "LOWER", b.opts)
}

// UpperHexFeatures generates the upper hex pattern; its anchor table
// has no external consumers.
func (b *Base) UpperHexFeatures() ([]geom.Shape, error) {
	origin := b.frame.HoleLocate("Upper Hex Hole", geom.SideRight,
		upperHexX1In, upperHexY1In, upperHexX2In, upperHexY2In, b.opts.HoleSegments)
	shapes, _, err := HexPattern(upperHexRows, upperHexSlotPairs,
		origin.Center(), origin.Diameter(), "UPPER", b.opts)
	return shapes, err
}
