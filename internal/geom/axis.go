package geom

// Axis names the reflection axes supported by Polygon.Reflect.
type Axis int

const (
	AxisX      Axis = iota // the x-axis
	AxisY                  // the y-axis
	AxisOrigin             // point reflection through the origin
	AxisDiag               // the line y = x
)

var axisNames = map[Axis]string{
	AxisX:      "x-axis",
	AxisY:      "y-axis",
	AxisOrigin: "origin",
	AxisDiag:   "y=x",
}

func (a Axis) String() string {
	if name, ok := axisNames[a]; ok {
		return name
	}
	return "unknown axis"
}

// ParseAxis maps an axis name ("x-axis", "y-axis", "origin", "y=x") to
// its Axis value. Anything else fails with a ValidationError.
func ParseAxis(s string) (Axis, error) {
	for axis, name := range axisNames {
		if s == name {
			return axis, nil
		}
	}
	return 0, &ValidationError{Reason: "unknown axis"}
}
