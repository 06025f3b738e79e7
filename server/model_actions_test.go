package server

import (
	"bytes"
	"encoding/gob"
	"errors"
	"math/rand"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/trucxanh/model"
)

func newTestServer() *GameServer {
	s := NewGameServer(model.DefaultLayout(), model.KeyR)
	s.Rand = func() *rand.Rand { return rand.New(rand.NewSource(5)) }
	return s
}

func nextMessage(t *testing.T, ps *PlayerSession) model.ServerMessage {
	select {
	case m := <-ps.MessagesToSend:
		return m
	default:
		t.Fatal("no message queued")
	}
	return model.ServerMessage{}
}

func assertNoMessage(t *testing.T, ps *PlayerSession) {
	select {
	case m := <-ps.MessagesToSend:
		t.Fatalf("unexpected message %+v", m)
	default:
	}
}

func TestGameSessionFrames(t *testing.T) {
	gs := newTestServer().newGameSession()
	gs.addPlayer(nil, make(chan struct{}))
	ps := gs.PlayerSession

	gs.publish(true)
	m := nextMessage(t, ps)
	assert.Equal(t, gs.Id, m.Session)
	assert.Equal(t, model.MENU, m.Frame.State)
	require.Len(t, m.Frame.Menu, 2)

	// unchanged frames are not resent
	gs.Tick(time.Now())
	assertNoMessage(t, ps)

	option := m.Frame.Menu[1].Rect
	gs.Turn(model.ClientMessage{Kind: model.EVENT_POINTER_DOWN, X: option.Min.X + 1, Y: option.Min.Y + 1})
	m = nextMessage(t, ps)
	assert.Equal(t, model.PLAYING, m.Frame.State)
	require.Len(t, m.Frame.Cards, 30)
	assert.Empty(t, m.Tones)

	card := gs.Game.Grid().Cards[3]
	gs.Turn(model.ClientMessage{Kind: model.EVENT_POINTER_DOWN, X: card.Rect.Min.X + 1, Y: card.Rect.Min.Y + 1})
	m = nextMessage(t, ps)
	assert.Equal(t, []model.Note{card.Note}, m.Tones)
	assert.True(t, m.Frame.Cards[3].Revealed)
	assert.Equal(t, card.Note, m.Frame.Cards[3].Note)

	// misclick changes nothing
	gs.Turn(model.ClientMessage{Kind: model.EVENT_POINTER_DOWN, X: 0, Y: 0})
	assertNoMessage(t, ps)
}

func TestGameSessionEnd(t *testing.T) {
	s := newTestServer()
	gs := s.newGameSession()
	gameOver := make(chan struct{})
	gs.addPlayer(nil, gameOver)

	gs.end(errors.New("gone"))
	assert.Equal(t, GS_ERR, gs.State)
	assert.Equal(t, PS_ERR, gs.PlayerSession.State)
	_, open := <-gameOver
	assert.False(t, open)
	_, open = <-gs.Done
	assert.False(t, open)
	assert.Equal(t, gs.Id, <-s.Ended)
}

func TestSessionsAreIndependent(t *testing.T) {
	s := NewGameServer(model.DefaultLayout(), model.KeyR)
	a, b := s.newGameSession(), s.newGameSession()
	assert.NotEqual(t, a.Id, b.Id)
	require.NoError(t, a.Game.Start(15))
	assert.Equal(t, model.PLAYING, a.Game.State)
	assert.Equal(t, model.MENU, b.Game.State)
}

func readServerMessage(t *testing.T, conn *websocket.Conn) model.ServerMessage {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, r, err := conn.NextReader()
	require.NoError(t, err)
	m := model.ServerMessage{}
	require.NoError(t, gob.NewDecoder(r).Decode(&m))
	return m
}

func writeClientMessage(t *testing.T, conn *websocket.Conn, cm model.ClientMessage) {
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(cm))
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, buf.Bytes()))
}

func TestRemotePlay(t *testing.T) {
	s := newTestServer()
	go s.Loop()
	srv := httptest.NewServer(s.HandleHttpCall())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	first := readServerMessage(t, conn)
	assert.NotEmpty(t, first.Session)
	require.Equal(t, model.MENU, first.Frame.State)

	option := first.Frame.Menu[0]
	assert.Equal(t, 25, option.Pairs)
	writeClientMessage(t, conn, model.ClientMessage{
		Kind: model.EVENT_POINTER_DOWN,
		X:    option.Rect.Min.X + 10,
		Y:    option.Rect.Min.Y + 10,
	})

	m := readServerMessage(t, conn)
	assert.Equal(t, first.Session, m.Session)
	assert.Equal(t, model.PLAYING, m.Frame.State)
	assert.Len(t, m.Frame.Cards, 50)
	assert.Equal(t, 10, m.Frame.Cols)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "GS_PLAY", GS_PLAY.Name())
	assert.Equal(t, "OVER", PS_OVER.Name())
	assert.Equal(t, HTTP_NOT_FOUND, GAME_NOT_FOUND.ToHttp())
}
