package world

const (
	WindowWidth  = 640.0
	WindowHeight = 480.0

	PaddleSpeed  = 8.0
	PaddleMargin = 16.0

	BallSpeed        = 5.0
	PaddleSpin       = 4.0
	BallAcceleration = 0.05
)
