package api

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-board/db/sqlc"
	mb "github.com/saeidalz13/battleship-board/models/board"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		// drag messages are tiny, the scene message is the largest one
		ReadBufferSize:  2048,
		WriteBufferSize: 8192,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	sceneManager   mb.SceneManager
	analytics      *sqlc.AnalyticsManager
	validator      *PayloadValidator
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	sceneManager mb.SceneManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		sceneManager:   sceneManager,
		validator:      MustNewPayloadValidator(),
	}

	rp.ipnet = getServerIpNet()
	rp.analytics = sqlc.NewDbManager(q, rp.ipnet).Analytics
	return rp
}

// Picks the first non-loopback IPv4 address of this host. Hosts
// without one (e.g. CI sandboxes) fall back to 127.0.0.1.
func getServerIpNet() net.IPNet {
	fallback := net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}

	ifaces, err := net.Interfaces()
	if err != nil {
		log.Println(err)
		return fallback
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			log.Println(err)
			continue
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	log.Println("no non-loopback ipv4 address found, using", fallback.IP)
	return fallback
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// use Upgrade method to make a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		rp.reconnect(sessionIdQuery, conn)
	}
}

// The scene is sent on the new connection before the waiting session
// loop is released, so the loop never writes concurrently with it.
func (rp RequestProcessor) reconnect(sessionId string, conn *websocket.Conn) {
	session, err := rp.sessionManager.FindSession(sessionId)
	if err != nil || session.Scene() == nil {
		// This either means an expired session or invalid session ID
		msg := mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID)
		msg.AddError("", "session does not exist or has expired")
		_ = conn.WriteJSON(msg)
		conn.Close()
		return
	}

	if err := conn.WriteJSON(newSceneMessage(session)); err != nil {
		log.Println(err)
		conn.Close()
		return
	}

	if _, err := rp.sessionManager.ReconnectSession(sessionId, conn); err != nil {
		log.Println(err)
		conn.Close()
	}
}

// The scene is read under the session's scene lock since a reconnect
// may build this message while the session loop is still handling a
// request of the old connection.
func newSceneMessage(session *mc.Session) mc.Message[mc.RespScene] {
	msg := mc.NewMessage[mc.RespScene](mc.CodeScene)

	session.WithScene(func(scene *mb.Scene) {
		ships := make([]mc.RespShip, 0, len(scene.Ships()))
		for _, ship := range scene.Ships() {
			ships = append(ships, mc.NewRespShip(ship))
		}

		msg.AddPayload(mc.RespScene{
			SceneUuid: scene.Uuid(),
			Grid:      scene.Board().GridSpec(),
			Ships:     ships,
			Shapes:    session.Recorder().Shapes(),
		})
	})
	return msg
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if scene := session.Scene(); scene != nil {
			rp.sceneManager.TerminateScene(scene.Uuid())
		}
		if conn := session.Conn(); conn != nil {
			conn.Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
		log.Println("session closed:", sessionId)
	}()

	scene, err := rp.sceneManager.CreateScene()
	if err != nil {
		log.Println(err)
		return
	}
	session.AttachScene(scene)

	rp.analytics.Record(rp.analytics.IncrementSessionsOpenedCount)

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}
	if err := rp.sessionManager.WriteToSessionConn(session, newSceneMessage(session), mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// then something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		code, err := rp.sessionManager.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		var respMsg interface{}

		switch code {
		case mc.CodeDragStart, mc.CodeDragMove, mc.CodeDragEnd, mc.CodeRotate, mc.CodeKeyDown:
			if err := rp.validator.Validate(code, payload); err != nil {
				respMsg = mc.NewErrMessage(mc.CodeInvalidPayload, err, "payload does not match the request code")
				break
			}
			respMsg = rp.handle(session, scene, code, payload)

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			respMsg = respInvalidSignal
		}

		if respMsg == nil {
			continue sessionLoop
		}
		if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
			break sessionLoop
		}
	}
}

// handle runs a validated drag request against the session's scene and
// mirrors the result onto the recorded shapes. A nil message means
// nothing is sent back.
func (rp RequestProcessor) handle(session *mc.Session, scene *mb.Scene, code uint8, payload []byte) interface{} {
	req := NewRequest(payload)

	switch code {
	case mc.CodeDragStart:
		return req.HandleDragStart(scene)

	case mc.CodeDragMove:
		respMsg := req.HandleDragMove(scene)
		if respMsg.Error == nil {
			session.Recorder().Move(session.ShipHandle(respMsg.Payload.ShipId), respMsg.Payload.X, respMsg.Payload.Y)
		}
		return respMsg

	case mc.CodeDragEnd:
		respMsg := req.HandleDragEnd(scene)
		if respMsg.Error == nil {
			session.Recorder().Move(session.ShipHandle(respMsg.Payload.ShipId), respMsg.Payload.X, respMsg.Payload.Y)
			rp.analytics.Record(rp.analytics.IncrementSnapsPerformedCount)
		}
		return respMsg

	case mc.CodeRotate:
		respMsg := req.HandleRotate(scene)
		if respMsg.Error == nil {
			session.Recorder().Rotate(session.ShipHandle(respMsg.Payload.ShipId), respMsg.Payload.Rotation)
		}
		return respMsg

	case mc.CodeKeyDown:
		respMsg, send := req.HandleKeyDown(scene)
		if !send {
			return nil
		}
		if respMsg.Error == nil {
			session.Recorder().Rotate(session.ShipHandle(respMsg.Payload.ShipId), respMsg.Payload.Rotation)
		}
		return respMsg
	}

	return nil
}
