package world

type Side int

const (
	SideLeft Side = iota
	SideRight
)

type Phase int

const (
	PhasePlaying Phase = iota
	// PhaseEnded is terminal. Simulate never leaves it.
	PhaseEnded
)

type Paddle struct {
	Entity
	Side Side
}

// State is one tick's snapshot of the match. Paddles are keyed by their
// entity ID so intents can address them.
type State struct {
	Tick    int64
	Paddles map[string]*Paddle
	Ball    Entity
	Phase   Phase
	Winner  Side
}

// NewMatchState places both paddles vertically centred at the field edges
// and serves the ball from the centre toward the left player.
func NewMatchState(leftID, rightID string, paddleSize, ballSize Vector) *State {
	return &State{
		Paddles: map[string]*Paddle{
			leftID: {
				Side: SideLeft,
				Entity: Entity{
					Coords: Vector{
						X: PaddleMargin,
						Y: (WindowHeight - paddleSize.Y) / 2,
					},
					Size: paddleSize,
				},
			},
			rightID: {
				Side: SideRight,
				Entity: Entity{
					Coords: Vector{
						X: WindowWidth - paddleSize.X - PaddleMargin,
						Y: (WindowHeight - paddleSize.Y) / 2,
					},
					Size: paddleSize,
				},
			},
		},
		Ball: Entity{
			Coords: Vector{
				X: (WindowWidth - ballSize.X) / 2,
				Y: (WindowHeight - ballSize.Y) / 2,
			},
			Velocity: Vector{X: -BallSpeed},
			Size:     ballSize,
		},
	}
}

func (s *State) PaddleOnSide(side Side) *Paddle {
	for _, paddle := range s.Paddles {
		if paddle.Side == side {
			return paddle
		}
	}
	return nil
}

func WinMessage(winner Side) string {
	if winner == SideLeft {
		return "Player 1 win!"
	}
	return "Player 2 win!"
}
