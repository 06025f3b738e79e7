package server

import (
	"math/rand"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zucenko/trucxanh/model"
)

const FPS = 60

type GameServer struct {
	GameSessions map[string]*GameSession
	GameRequests chan GameRequest
	Ended        chan string
	Upgrader     *websocket.Upgrader
	Layout       model.Layout
	RestartKey   model.Key
	Rand         func() *rand.Rand
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_ERR
	GS_OVER
)

// GameSession runs one game for one remote player.
type GameSession struct {
	Id                    string
	State                 GameSessionState
	Game                  *model.Game
	PlayerSession         *PlayerSession
	Errors                chan error
	Events                chan model.ClientMessage
	PlayerConnectRequests chan PlayerConnectRequest
	Done                  chan struct{}

	tones     *toneQueue
	started   time.Time
	lastFrame *model.RenderModel
	ended     chan<- string
}

type PlayerSessionState int

const (
	PS_NEW PlayerSessionState = iota + 1
	PS_PLAY
	PS_OVER
	PS_ERR
)

type PlayerSession struct {
	State       PlayerSessionState
	GameSession *GameSession
	Conn        *websocket.Conn
	GameOver    chan struct{}

	MessagesToSend chan model.ServerMessage

	DebugInMessages  int
	DebugOutMessages int
	DebugLastMessage time.Time
	DebugLastPing    time.Time
	DebugPings       int
}

// toneQueue collects flipped notes until the next frame is sent.
type toneQueue struct {
	notes []model.Note
}

func (q *toneQueue) PlayTone(n model.Note) {
	q.notes = append(q.notes, n)
}

func (q *toneQueue) drain() []model.Note {
	notes := q.notes
	q.notes = nil
	return notes
}
