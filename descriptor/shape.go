package descriptor

//go:generate go tool stringer -type=Shape -output=shape_string.go

// Shape classifies a destination type for dispatch.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapePrimitive
	ShapeEnum
	ShapePointer
	ShapeInterface
	ShapeCollection
	ShapeMap
	ShapeObject

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)
