package connection

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	CleanupPeriodically(ctx context.Context) error

	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	ReconnectSession(sessionId string, conn *websocket.Conn) (*Session, error)
	HandleAbnormalClosureSession(session *Session) error

	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	FetchCodeFromMsg(payload []byte) (uint8, error)
	Count() int
}

type BoardSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BoardSessionManager)(nil)

func NewBoardSessionManager() *BoardSessionManager {
	initMapSize := 10

	return &BoardSessionManager{
		sessions:        make(map[string]*Session, initMapSize),
		cleanupInterval: time.Minute * 20,
	}
}

// creating a new URL compatible session ID
func NewSessionId() string {
	return base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
}

func (bsm *BoardSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	session := NewSession(NewSessionId(), conn)

	bsm.mu.Lock()
	bsm.sessions[session.id] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BoardSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (bsm *BoardSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	delete(bsm.sessions, sessionId)
}

func (bsm *BoardSessionManager) ReconnectSession(sessionId string, conn *websocket.Conn) (*Session, error) {
	session, err := bsm.FindSession(sessionId)
	if err != nil {
		return nil, err
	}

	session.reconnectionAfterAbnormalClosure(conn)
	log.Printf("session reconnected: %s\n", sessionId)
	return session, nil
}

func (bsm *BoardSessionManager) Count() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()
	return len(bsm.sessions)
}

// To ensure that there is no dangling connections,
// server session manager marks the connections with a
// lifetime of more than 20 mins as stale and deletes them.
func (bsm *BoardSessionManager) CleanupPeriodically(ctx context.Context) error {
	assumedClosedConns := 10

	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ticker.C:
			bsm.mu.Lock()
			toDelete := make([]string, 0, assumedClosedConns)

			for ID, session := range bsm.sessions {
				if time.Since(session.createdAt) > bsm.cleanupInterval {
					toDelete = append(toDelete, ID)
				}
			}

			log.Println("Clean up sessions:")
			for _, ID := range toDelete {
				delete(bsm.sessions, ID)
				log.Printf("removed: %s", ID)
			}
			bsm.mu.Unlock()
		}
	}
}

// This function takes care of abnormal closures. The session is kept
// for a grace period so the client can come back with its session id
// and find its fleet where it left it.
func (bsm *BoardSessionManager) HandleAbnormalClosureSession(s *Session) error {
	return bsm.awaitReconnection(s, s.reconnectionSignal())
}

// signal must be taken before the failing read or write so a client
// that reconnects in between is not missed.
func (bsm *BoardSessionManager) awaitReconnection(s *Session, signal chan bool) error {
	if s.Scene() == nil {
		return NewConnErr(ConnLoopBreak).AddDesc("scene is nil; invalid session")
	}

	timer := time.NewTimer(gracePeriod)
	defer timer.Stop()

	select {
	case <-timer.C:
		log.Printf("session terminated: %s\n", s.id)
		return NewConnErr(ConnLoopBreak).AddDesc("grace period is over for session: " + s.id)

	case <-signal:
		log.Printf("client reconnected, session: %s\n", s.id)
		return nil
	}
}

func (bsm *BoardSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	_, signal := session.connAndSignal()
	err := session.writeToConnWithRetry(msg, msgType)
	if err == nil {
		return nil
	}

	// the client came back on a new connection while this write failed
	if signaled(signal) {
		return session.writeToConnWithRetry(msg, msgType)
	}

	connErr, ok := err.(ConnErr)
	if !ok {
		return err
	}

	if connErr.Code() == ConnLoopAbnormalClosureRetry {
		if err := bsm.awaitReconnection(session, signal); err != nil {
			return connErr
		}
		return nil
	}
	return connErr
}

func (bsm *BoardSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		conn, signal := session.connAndSignal()
		messageType, payload, err := conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		// conn was replaced by a reconnection and closed under us
		if signaled(signal) {
			continue
		}

		switch session.handleReadFromConnErr(err, retries) {
		case ConnLoopContinue:
			retries++
			continue

		case ConnLoopAbnormalClosureRetry:
			if err := bsm.awaitReconnection(session, signal); err != nil {
				return -1, []byte{}, err
			}

		default:
			return -1, []byte{}, err
		}
	}
}

func (bsm *BoardSessionManager) FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal Signal
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}

	return signal.Code, nil
}
