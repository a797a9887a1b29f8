package game

// EvaluateDiskCount tallies each side's disks to produce a relative
// score between -1 and 1 from the current player's perspective.
func EvaluateDiskCount(s State) float64 {
	t, side := turnPerspective(s)
	dark, light := t.Score()
	if side == Dark {
		return normalize(float64(dark), float64(light))
	}
	return normalize(float64(light), float64(dark))
}

// EvaluateMobility compares how many legal moves each side would have
// on the current board, producing a score between -1 and 1 from the
// current player's perspective.
func EvaluateMobility(s State) float64 {
	t, side := turnPerspective(s)
	own := float64(t.legalMoveCount(side))
	opponent := float64(t.legalMoveCount(side.Opposite()))
	return normalize(own, opponent)
}

// EvaluateCorners compares corner ownership, producing a score between
// -1 and 1 from the current player's perspective. Corners can never be
// recaptured, so they weigh heavily in positional play.
func EvaluateCorners(s State) float64 {
	t, side := turnPerspective(s)
	corners := [4]Coord{
		NewCoord(0, 0),
		NewCoord(0, Size-1),
		NewCoord(Size-1, 0),
		NewCoord(Size-1, Size-1),
	}
	var own, opponent float64
	for _, corner := range corners {
		disk, err := t.board.Disk(corner)
		if err != nil {
			continue // empty corner
		}
		if disk.Side() == side {
			own++
		} else {
			opponent++
		}
	}
	return normalize(own, opponent)
}

// EvaluateMaterialMobility combines disk count, mobility, and corner
// ownership into a single score between -1 and 1 from the current
// player's perspective.
func EvaluateMaterialMobility(s State) float64 {
	diskScore := EvaluateDiskCount(s)
	mobilityScore := EvaluateMobility(s)
	cornerScore := EvaluateCorners(s)

	return (diskScore + mobilityScore + cornerScore) / 3.0
}

// legalMoveCount counts the legal placements side would have on this
// board, regardless of whose move it actually is.
func (t Turn) legalMoveCount(side Side) int {
	probe := t
	probe.status = InProgress(side)
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if probe.CheckMove(NewCoord(row, col)) == nil {
				count++
			}
		}
	}
	return count
}

// turnPerspective unwraps the state and picks the side the evaluation
// is scored for: the side to move, or Dark once the game has ended.
func turnPerspective(s State) (Turn, Side) {
	t, ok := s.(Turn)
	if !ok {
		panic("unexpected state type")
	}
	side, ok := t.status.Side()
	if !ok {
		side = Dark
	}
	return t, side
}

// normalize converts two tallies into a single score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
