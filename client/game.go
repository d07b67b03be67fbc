package client

import (
	"image/color"

	"pong/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/segmentio/ksuid"
)

// Cornflower blue, same as the original table.
var backgroundColor = color.RGBA{100, 149, 237, 255}

type Game struct {
	*Assets
	state   *world.State
	leftID  string
	rightID string
}

func NewGame(assets *Assets) *Game {
	leftID := ksuid.New().String()
	rightID := ksuid.New().String()

	paddleW, paddleH := assets.Image("player1").Size()
	ballW, ballH := assets.Image("ball").Size()

	state := world.NewMatchState(
		leftID,
		rightID,
		world.Vector{X: float64(paddleW), Y: float64(paddleH)},
		world.Vector{X: float64(ballW), Y: float64(ballH)},
	)

	return &Game{
		Assets:  assets,
		state:   state,
		leftID:  leftID,
		rightID: rightID,
	}
}

// handleKeysPressed maps the held keys to per-paddle intent sets.
// W/S drive the left paddle, the arrow keys the right one.
func (g *Game) handleKeysPressed() map[string]world.Intents {
	intents := map[string]world.Intents{
		g.leftID:  make(world.Intents),
		g.rightID: make(world.Intents),
	}

	var keys []ebiten.Key
	for _, key := range inpututil.AppendPressedKeys(keys) {
		switch key {
		case ebiten.KeyW:
			intents[g.leftID][world.MoveUp] = struct{}{}
		case ebiten.KeyS:
			intents[g.leftID][world.MoveDown] = struct{}{}
		case ebiten.KeyUp:
			intents[g.rightID][world.MoveUp] = struct{}{}
		case ebiten.KeyDown:
			intents[g.rightID][world.MoveDown] = struct{}{}
		}
	}
	return intents
}

func (g *Game) Update() error {
	g.state = world.Simulate(g.state, g.handleKeysPressed())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.state.Phase == world.PhaseEnded {
		text.Draw(
			screen,
			world.WinMessage(g.state.Winner),
			g.Font("font"),
			world.WindowWidth/2-140,
			world.WindowHeight/2-22+fontSize,
			color.White,
		)
		return
	}

	for _, paddle := range g.state.Paddles {
		image := g.Image("player1")
		if paddle.Side == world.SideRight {
			image = g.Image("player2")
		}

		options := &ebiten.DrawImageOptions{}
		options.GeoM.Translate(paddle.Coords.X, paddle.Coords.Y)
		screen.DrawImage(image, options)
	}

	options := &ebiten.DrawImageOptions{}
	options.GeoM.Translate(g.state.Ball.Coords.X, g.state.Ball.Coords.Y)
	screen.DrawImage(g.Image("ball"), options)
}

// Layout keeps the playfield at its logical resolution no matter how the
// outer window is sized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return world.WindowWidth, world.WindowHeight
}
