package world

// Entity is anything that moves and gets drawn: a paddle or the ball.
// Size comes from the entity's texture dimensions at load time.
type Entity struct {
	Coords   Vector
	Velocity Vector
	Size     Vector
}

func (e *Entity) Width() float64 {
	return e.Size.X
}

func (e *Entity) Height() float64 {
	return e.Size.Y
}

func (e *Entity) Bounds() Rect {
	return Rect{
		X: e.Coords.X,
		Y: e.Coords.Y,
		W: e.Size.X,
		H: e.Size.Y,
	}
}

func (e *Entity) Centre() Vector {
	return Vector{
		X: e.Coords.X + e.Size.X/2,
		Y: e.Coords.Y + e.Size.Y/2,
	}
}

// FixPosition clamps the entity vertically into the window. There is no
// horizontal clamping; the ball leaving the field sideways ends the match.
func (e *Entity) FixPosition() {
	maxY := WindowHeight - e.Height()
	if e.Coords.Y > maxY {
		e.Coords.Y = maxY
	} else if e.Coords.Y < 0 {
		e.Coords.Y = 0
	}
}
