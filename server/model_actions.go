package server

import (
	"encoding/gob"
	"net"
	"net/http"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/trucxanh/model"
)

func NewGameServer(layout model.Layout, restartKey model.Key) *GameServer {
	return &GameServer{
		GameSessions: make(map[string]*GameSession),
		GameRequests: make(chan GameRequest),
		Ended:        make(chan string, 16),
		Upgrader:     &websocket.Upgrader{},
		Layout:       layout,
		RestartKey:   restartKey,
	}
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("HandleHttpCall - connection received")

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{GameContextAwaiting: gcas}:
		case <-time.After(timeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var gca GameContextAwaiting
		select {
		case gca = <-gcas:
			if gca.ResponseCode != GAME_READY {
				w.WriteHeader(gca.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warn("HandleHttpCall GameContextAwaiting <- TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already replied to the client
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			gca.GameSession.Errors <- err
			return
		}
		defer con.Close()

		gameOver := make(chan struct{})
		select {
		case gca.GameSession.PlayerConnectRequests <- PlayerConnectRequest{
			Con:      con,
			GameOver: gameOver}:
		case <-time.After(timeout):
			log.Warnf("HandleHttpCall session %s did not take the player", gca.GameSession.Id)
			return
		}

		<-gameOver
		log.WithField("session", gca.GameSession.Id).Info("HandleHttpCall game over")
	}
}

func (s *GameServer) Loop() {
	log.Info("GameServer.Loop starting")
	for {
		select {
		case gameReq := <-s.GameRequests:
			gs := s.newGameSession()
			s.GameSessions[gs.Id] = gs
			go gs.Loop()
			log.WithField("session", gs.Id).Infof("GameServer.Loop created session, running:%d", len(s.GameSessions))
			gameReq.GameContextAwaiting <- GameContextAwaiting{
				ResponseCode: GAME_READY,
				GameSession:  gs,
			}
		case id := <-s.Ended:
			delete(s.GameSessions, id)
			log.WithField("session", id).Infof("GameServer.Loop session ended, running:%d", len(s.GameSessions))
		}
	}
}

func (s *GameServer) newGameSession() *GameSession {
	tones := &toneQueue{}
	opts := []model.Option{
		model.WithLayout(s.Layout),
		model.WithRestartKey(s.RestartKey),
		model.WithTones(tones),
	}
	if s.Rand != nil {
		opts = append(opts, model.WithRand(s.Rand()))
	}
	return &GameSession{
		Id:                    uuid.NewString(),
		State:                 GS_NEW,
		Game:                  model.NewGame(opts...),
		Errors:                make(chan error, 1),
		Events:                make(chan model.ClientMessage, 16),
		PlayerConnectRequests: make(chan PlayerConnectRequest),
		Done:                  make(chan struct{}),
		tones:                 tones,
		started:               time.Now(),
		ended:                 s.Ended,
	}
}

func (gs *GameSession) Loop() {
	logger := log.WithField("session", gs.Id)
	logger.Info("GameSession.Loop start")
	ticker := time.NewTicker(time.Second / FPS)
	defer ticker.Stop()
	for {
		select {
		case pcr := <-gs.PlayerConnectRequests:
			gs.addPlayer(pcr.Con, pcr.GameOver)
			gs.State = GS_PLAY
			gs.publish(true)
		case cm := <-gs.Events:
			gs.Turn(cm)
		case now := <-ticker.C:
			gs.Tick(now)
		case err := <-gs.Errors:
			logger.Infof("GameSession.Loop end: %v", err)
			gs.end(err)
			return
		}
	}
}

// Turn applies one remote input event and sends the resulting frame.
func (gs *GameSession) Turn(cm model.ClientMessage) {
	cm.Apply(gs.Game)
	gs.publish(false)
}

func (gs *GameSession) Tick(now time.Time) {
	gs.Game.Update(now.Sub(gs.started).Milliseconds())
	gs.publish(false)
}

func (gs *GameSession) publish(force bool) {
	ps := gs.PlayerSession
	if ps == nil {
		return
	}
	frame := gs.Game.RenderModel()
	tones := gs.tones.drain()
	if !force && len(tones) == 0 && gs.lastFrame != nil && reflect.DeepEqual(frame, *gs.lastFrame) {
		return
	}
	gs.lastFrame = &frame
	select {
	case ps.MessagesToSend <- model.ServerMessage{Session: gs.Id, Frame: frame, Tones: tones}:
	default:
		log.WithField("session", gs.Id).Warn("dropping frame, MessagesToSend FULL")
	}
}

func (gs *GameSession) end(err error) {
	if err != nil {
		gs.State = GS_ERR
	} else {
		gs.State = GS_OVER
	}
	close(gs.Done)
	if ps := gs.PlayerSession; ps != nil {
		if err != nil {
			ps.State = PS_ERR
		} else {
			ps.State = PS_OVER
		}
		close(ps.GameOver)
	}
	gs.ended <- gs.Id
}

func (gs *GameSession) addPlayer(
	conn *websocket.Conn,
	gameOver chan struct{},
) {
	ps := &PlayerSession{
		State:          PS_PLAY,
		GameSession:    gs,
		Conn:           conn,
		GameOver:       gameOver,
		MessagesToSend: make(chan model.ServerMessage, 10),
	}
	if conn != nil {
		conn.SetPingHandler(
			func(message string) error {
				err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
				ps.DebugLastPing = time.Now()
				ps.DebugPings++
				if err == websocket.ErrCloseSent {
					return nil
				} else if e, ok := err.(net.Error); ok && e.Temporary() {
					return nil
				}
				return err
			})
		go ps.LoopChannelRead()
		go ps.LoopChannelWrite()
	}
	gs.PlayerSession = ps
}

func (ps *PlayerSession) fail(err error) {
	select {
	case ps.GameSession.Errors <- err:
	case <-ps.GameSession.Done:
	}
}

func (ps *PlayerSession) LoopChannelRead() {
	log.Debug("LoopChannelRead STARTED")
	for {
		_, r, err := ps.Conn.NextReader()
		if err != nil {
			ps.fail(err)
			break
		}
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			ps.fail(err)
			break
		}
		ps.DebugLastMessage = time.Now()
		ps.DebugInMessages++

		select {
		case ps.GameSession.Events <- cm:
		case <-ps.GameSession.Done:
			return
		default:
			log.Warn("dropping client message, GameSession.Events FULL")
		}
	}
	log.Debug("LoopChannelRead ENDED")
}

// this function only consumes. no worries about full buffer stuck
func (ps *PlayerSession) LoopChannelWrite() {
	log.Debug("PlayerSession.LoopChannelWrite STARTED")
	for {
		select {
		case mes := <-ps.MessagesToSend:
			if err := ps.write(mes); err != nil {
				log.Warnf("PlayerSession.LoopChannelWrite %v", err)
				ps.fail(err)
				return
			}
			ps.DebugOutMessages++
		case <-ps.GameSession.Done:
			log.Debug("LoopChannelWrite ENDED")
			return
		}
	}
}

func (ps *PlayerSession) write(mes model.ServerMessage) error {
	w, err := ps.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		return err
	}
	return w.Close()
}
