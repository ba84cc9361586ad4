package romi

import (
	"fmt"

	"github.com/chassiskit/romibase/geom"
)

// The battery compartment features straddle the vertical center axis
// and are already whole, so they carry no side tag and are never
// mirrored. Everything is placed relative to the battery reference
// hole called out on the vendor drawing.
const (
	batteryRefX1In, batteryRefY1In = -3.913146, 3.376610
	batteryRefX2In, batteryRefY2In = -3.822591, 3.286051

	// Hole grid pitch and row offsets in millimeters, relative to the
	// reference hole center.
	batteryXPitch = 10.0
	batteryRowDY  = 12.3
)

// batteryLowerRows marks which of the 3x9 lower battery holes exist;
// '-' cells are blocked by the motor clips. The reference hole is the
// 'O' in the first row.
var batteryLowerRows = []string{
	"*-**O**-*",
	"*-*****-*",
	"*-*****-*",
}

// batterySlotBoxes lists the diagonal calibration boxes (inches) of
// the six battery slots. The polarity nubs on the real slots are not
// modeled.
var batterySlotBoxes = []struct {
	base           string
	x1, y1, x2, y2 float64
}{
	{"BATTERY: Upper Left Battery Slot", -5.550937, 4.252594, -4.074563, 4.473067},
	{"BATTERY: Upper Right Battery Slot", -3.621799, 4.252594, -2.145425, 4.473067},
	{"BATTERY: Lower Left Battery Slot", -5.590311, 3.705346, -4.113925, 3.925815},
	{"BATTERY: Lower Right Battery Slot", -3.661173, 3.705346, -2.184799, 3.925815},
	{"BATTERY: Upper Center Battery Slot", -4.586370, 3.012429, -3.109992, 3.232913},
	{"BATTERY: Lower Center Battery Slot", -4.625744, 2.465193, -3.149354, 2.685665},
}

// batteryCutoutBoxes lists the calibration boxes (inches) of the four
// upper and three lower battery case cutouts.
var batteryCutoutBoxes = []struct {
	base           string
	x1, y1, x2, y2 float64
}{
	{"BATTERY: Upper Outer Left Cutout", -5.984008, 4.748650, -5.302909, 4.965193},
	{"BATTERY: Upper Inner Left Cutout", -5.235980, 4.669913, -4.861965, 4.858886},
	{"BATTERY: Upper Inner Right Cutout", -2.873772, 4.669913, -2.499756, 4.858886},
	{"BATTERY: Upper Outer Right Cutout", -2.432827, 4.748650, -1.751728, 4.965193},
	{"BATTERY: Lower Left Cutout", -5.572591, 1.939594, -4.655272, 2.189594},
	{"BATTERY: Lower Center Cutout", -4.340311, 2.032122, -3.395425, 2.189594},
	{"BATTERY: Lower Right Cutout", -3.080465, 1.939594, -2.163146, 2.189594},
}

// Encoder connector slot layout, measured on the right side and
// mirrored to the left. The X anchor is in drawing inches; the slot
// pitch and width are direct millimeter measurements.
const (
	encoderAnchorXIn  = -2.031646
	encoderAnchorFudge = 8.85 // mm from the anchor to the outer slot edge
	encoderSlotDX      = 2.5  // mm
	encoderInnerGap    = 1.65 // mm between the two slots
	encoderSlotDYIn    = 0.70
)

// BatteryFeatures returns every battery compartment feature: the lower
// and upper hole grids, six battery slots, seven case cutouts, and the
// four encoder connector slots (right pair plus mirrored left pair).
func (b *Base) BatteryFeatures() []geom.Shape {
	reference := b.frame.HoleLocate("BATTERY: Reference Hole", geom.SideCenter,
		batteryRefX1In, batteryRefY1In, batteryRefX2In, batteryRefY2In, b.opts.HoleSegments)
	referenceY := reference.Center().Y

	shapes := make([]geom.Shape, 0, 72)

	// Lower grid: 3 rows by 9 columns, selectively populated, moving
	// down from the reference hole row.
	lowerColumn0X := -4.0 * batteryXPitch
	for xIndex := 0; xIndex < 9; xIndex++ {
		x := lowerColumn0X + float64(xIndex)*batteryXPitch
		for yIndex, row := range batteryLowerRows {
			if row[xIndex] == '-' {
				continue
			}
			center := geom.Point2D{X: x, Y: referenceY - float64(yIndex)*batteryRowDY}
			shapes = append(shapes, reference.Copy(
				fmt.Sprintf("BATTERY: Lower Hole (%d, %d)", xIndex, yIndex), center))
		}
	}

	// Upper grid: 3 rows by 10 columns, fully populated, above the
	// motors.
	upperColumn0X := -4.5 * batteryXPitch
	for xIndex := 0; xIndex < 10; xIndex++ {
		x := upperColumn0X + float64(xIndex)*batteryXPitch
		for yIndex := 0; yIndex < 3; yIndex++ {
			center := geom.Point2D{X: x, Y: referenceY + 7.0 + float64(yIndex)*batteryRowDY}
			shapes = append(shapes, reference.Copy(
				fmt.Sprintf("BATTERY: Upper Hole (%d, %d)", xIndex, yIndex), center))
		}
	}

	for _, box := range batterySlotBoxes {
		shapes = append(shapes, b.frame.RectangleLocate(box.base, geom.SideCenter,
			box.x1, box.y1, box.x2, box.y2))
	}
	for _, box := range batteryCutoutBoxes {
		shapes = append(shapes, b.frame.RectangleLocate(box.base, geom.SideCenter,
			box.x1, box.y1, box.x2, box.y2))
	}

	// Encoder connector through-hole slots. The two right-side slots
	// sit on the axle line; their mirrors complete the left side.
	x1 := encoderAnchorXIn*b.frame.Scale - b.frame.Offset.X - encoderAnchorFudge
	x2 := x1 - encoderSlotDX
	x3 := x2 - encoderInnerGap
	x4 := x3 - encoderSlotDX
	slotDY := encoderSlotDYIn * b.frame.Scale

	outer := geom.NewSlot("Outer Encoder Slot", geom.SideRight,
		encoderSlotDX, slotDY, geom.Point2D{X: (x1 + x2) / 2.0},
		0.0, encoderSlotDX/2.0, 3)
	inner := geom.NewSlot("Inner Encoder Slot", geom.SideRight,
		encoderSlotDX, slotDY, geom.Point2D{X: (x3 + x4) / 2.0},
		0.0, encoderSlotDX/2.0, 3)
	shapes = append(shapes, outer, outer.Mirror(), inner, inner.Mirror())

	return shapes
}
