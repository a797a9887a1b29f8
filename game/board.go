package game

// Cell is a single board square: empty, or holding exactly one disk.
type Cell struct {
	disk  Disk
	taken bool
}

// IsEmpty reports whether the cell holds no disk.
func (c Cell) IsEmpty() bool {
	return !c.taken
}

// Disk returns the disk in the cell, if any.
func (c Cell) Disk() (Disk, bool) {
	return c.disk, c.taken
}

// Board is the fixed Size x Size grid of cells. It is a plain value:
// assigning a Board copies every cell, so derived positions never
// share storage with the boards they came from.
type Board struct {
	cells [Size][Size]Cell
}

// Cell returns the cell at coord, failing when coord is off the board.
func (b Board) Cell(coord Coord) (Cell, error) {
	if !coord.inBounds() {
		return Cell{}, &OutOfBoundsError{Coord: coord}
	}
	return b.cells[coord.Row][coord.Col], nil
}

// Disk returns the disk at coord, failing on an empty cell.
func (b Board) Disk(coord Coord) (Disk, error) {
	cell, err := b.Cell(coord)
	if err != nil {
		return Disk{}, err
	}
	disk, ok := cell.Disk()
	if !ok {
		return Disk{}, &EmptyCellError{Coord: coord}
	}
	return disk, nil
}

// PlaceDisk puts a new disk of the given side on an empty cell.
func (b *Board) PlaceDisk(side Side, coord Coord) error {
	cell, err := b.Cell(coord)
	if err != nil {
		return err
	}
	if !cell.IsEmpty() {
		return &CellTakenError{Coord: coord}
	}
	b.cells[coord.Row][coord.Col] = Cell{disk: NewDisk(side), taken: true}
	return nil
}

// FlipDisk turns the disk at coord over to the opposite side.
func (b *Board) FlipDisk(coord Coord) error {
	disk, err := b.Disk(coord)
	if err != nil {
		return err
	}
	b.cells[coord.Row][coord.Col] = Cell{disk: disk.Flipped(), taken: true}
	return nil
}

// Cells returns a copy of the full grid for rendering or iteration.
func (b Board) Cells() [Size][Size]Cell {
	return b.cells
}

// CountDisks tallies the disks of the given side on the board.
func (b Board) CountDisks(side Side) int {
	count := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if disk, ok := cell.Disk(); ok && disk.Side() == side {
				count++
			}
		}
	}
	return count
}
