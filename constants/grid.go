package constants

// World Grid
const (
	// BlockSize is the edge length of one square grid cell in world units
	BlockSize = 64

	// QuadDelta is the edge length of one cell quadrant (BlockSize / 2)
	QuadDelta = BlockSize >> 1

	// WorldWidth is the number of grid columns
	WorldWidth = 16

	// WorldHeight is the number of grid rows
	WorldHeight = 9

	// WorldCells is the total number of grid cells
	WorldCells = WorldWidth * WorldHeight

	// WorldPixelWidth is the world width in units (also snapshot width in pixels)
	WorldPixelWidth = BlockSize * WorldWidth

	// WorldPixelHeight is the world height in units (also snapshot height in pixels)
	WorldPixelHeight = BlockSize * WorldHeight
)

// Curve Sampling & Classification
const (
	// CurveResolution is the number of samples taken along the curve per frame
	CurveResolution = 64

	// MinCurvePoints is the sample count a cell must exceed to be occupied
	MinCurvePoints = 2

	// ShapeCount is the size of the block shape catalog
	ShapeCount = 7

	// QuadrantCount is the number of quadrants per cell
	QuadrantCount = 4
)

// Control Points
const (
	// ControlPointCount is the number of curve control points (2 endpoints, 2 handles)
	ControlPointCount = 4

	// PickRadius is the pointer distance in world units that grabs a control point
	PickRadius = 5.0

	// ControlPointRadius is the drawn radius of a control point
	ControlPointRadius = 5.0
)
