package world

import "math"

func updatePaddle(p *Paddle, intents Intents) {
	for intent := range intents {
		switch intent {
		case MoveUp:
			p.Coords.Y -= PaddleSpeed
		case MoveDown:
			p.Coords.Y += PaddleSpeed
		}
	}
	p.FixPosition()
}

// signum mirrors IEEE signum: +1 for positive values and zero, -1 otherwise.
func signum(v float64) float64 {
	if math.Signbit(v) {
		return -1
	}
	return 1
}

func updateBall(ball *Entity, s *State) {
	ball.Coords = ball.Coords.Add(ball.Velocity)

	if paddle := s.hitPaddle(ball.Bounds()); paddle != nil {
		// Grow the ball's speed by a fixed increment, then flip it.
		ball.Velocity.X = -(ball.Velocity.X + BallAcceleration*signum(ball.Velocity.X))

		// Offset of the contact point from the paddle centre, roughly in
		// [-0.5, 0.5]. The spin pushes the ball away from that point.
		offset := (paddle.Centre().Y - ball.Centre().Y) / paddle.Height()
		ball.Velocity.Y += PaddleSpin * -offset
	}

	if ball.Coords.Y <= 0 || ball.Coords.Y+ball.Height() >= WindowHeight {
		ball.Velocity.Y = -ball.Velocity.Y
	}
}

// hitPaddle returns the paddle the ball overlaps, checking the left side
// first so it wins ties.
func (s *State) hitPaddle(bounds Rect) *Paddle {
	for _, side := range []Side{SideLeft, SideRight} {
		if paddle := s.PaddleOnSide(side); paddle != nil && bounds.Intersects(paddle.Bounds()) {
			return paddle
		}
	}
	return nil
}

// Simulate advances the match by one tick and returns the next state. The
// input state is left untouched. Once the match has ended the state is
// frozen and Simulate hands it back unchanged.
func Simulate(s *State, intents map[string]Intents) *State {
	if s.Phase == PhaseEnded {
		return s
	}

	next := &State{
		Tick:    s.Tick + 1,
		Paddles: make(map[string]*Paddle, len(s.Paddles)),
		Ball:    s.Ball,
		Phase:   PhasePlaying,
	}

	for id, paddle := range s.Paddles {
		p := *paddle
		updatePaddle(&p, intents[id])
		next.Paddles[id] = &p
	}

	updateBall(&next.Ball, next)

	if next.Ball.Coords.X < 0 {
		next.Phase = PhaseEnded
		next.Winner = SideRight
	} else if next.Ball.Coords.X+next.Ball.Width() > WindowWidth {
		next.Phase = PhaseEnded
		next.Winner = SideLeft
	}

	return next
}
