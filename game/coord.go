package game

import "fmt"

const (
	// Size is the number of rows and columns of the board.
	Size = 8
	// NumCells is the total number of cells on the board.
	NumCells = Size * Size
)

// Direction is one of the eight compass directions a capture scan can
// follow.
type Direction struct {
	dRow, dCol int
}

// Directions lists all eight compass directions.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Coord addresses a single cell on the board. Valid coordinates have
// both row and column in [0, Size).
type Coord struct {
	Row, Col int
}

// NewCoord returns the coordinate for the given row and column.
func NewCoord(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

func (c Coord) inBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Step moves the coordinate one cell in the given direction. Stepping
// off the grid fails with OutOfBoundsError and leaves the coordinate
// unchanged.
func (c *Coord) Step(dir Direction) error {
	next := Coord{Row: c.Row + dir.dRow, Col: c.Col + dir.dCol}
	if !next.inBounds() {
		return &OutOfBoundsError{Coord: next}
	}
	*c = next
	return nil
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}
