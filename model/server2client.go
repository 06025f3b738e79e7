package model

type ClientEventKind int

const (
	EVENT_POINTER_DOWN ClientEventKind = iota + 1
	EVENT_POINTER_MOVE
	EVENT_KEY_DOWN
)

type ClientMessage struct {
	Kind ClientEventKind
	X, Y int
	Key  Key
}

type ServerMessage struct {
	Session string
	Frame   RenderModel
	// notes flipped since the previous message
	Tones []Note
}

// Apply forwards a remote input event to the game.
func (m ClientMessage) Apply(g *Game) {
	switch m.Kind {
	case EVENT_POINTER_DOWN:
		g.HandlePointerDown(m.X, m.Y)
	case EVENT_POINTER_MOVE:
		g.HandlePointerMove(m.X, m.Y)
	case EVENT_KEY_DOWN:
		g.HandleKeyDown(m.Key)
	}
}
