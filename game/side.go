package game

// Side identifies one of the two players. Dark always moves first.
type Side uint8

const (
	Dark Side = iota
	Light
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Dark {
		return Light
	}
	return Dark
}

func (s Side) String() string {
	if s == Dark {
		return "Dark"
	}
	return "Light"
}

// Disk is a placed token tagged with the side it belongs to.
type Disk struct {
	side Side
}

// NewDisk returns a disk belonging to the given side.
func NewDisk(side Side) Disk {
	return Disk{side: side}
}

// Side returns the side the disk currently belongs to.
func (d Disk) Side() Side {
	return d.side
}

// Flipped returns the disk turned over to the opposite side.
func (d Disk) Flipped() Disk {
	return Disk{side: d.side.Opposite()}
}
