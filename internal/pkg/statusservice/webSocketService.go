package statusservice

import (
	"strings"
	"sync"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
)

// WsConn is a websocket connection subscribed to file status changes
type WsConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	Close() error
	WriteJSON(v interface{}) error
}

// syncConn allows one writer at a time, websocket connections support no concurrent writes
type syncConn struct {
	WsConn
	lock sync.Mutex
}

func (c *syncConn) WriteJSON(v interface{}) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.WsConn.WriteJSON(v)
}

// WSConnKeeper implements connection management
type WSConnKeeper struct {
	idConnectionMap map[string]map[WsConn]struct{}
	connectionIDMap map[WsConn]string
	mapLock         *sync.Mutex
	timeOut         time.Duration
}

// NewWSConnKeeper creates manager, an idle connection is closed after timeout
func NewWSConnKeeper(timeOut time.Duration) *WSConnKeeper {
	res := &WSConnKeeper{}
	res.idConnectionMap = make(map[string]map[WsConn]struct{})
	res.connectionIDMap = make(map[WsConn]string)
	res.mapLock = &sync.Mutex{}
	res.timeOut = timeOut
	if res.timeOut <= 0 {
		res.timeOut = time.Minute * 30
	}
	return res
}

// HandleConnection loops until connection is active.
// Every received message is a file ID the connection subscribes to, the last one wins.
func (kp *WSConnKeeper) HandleConnection(wsConn WsConn) error {
	conn := &syncConn{WsConn: wsConn}
	defer kp.deleteConnection(conn)
	defer conn.Close()
	readCh := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(readCh)
		defer goapp.Log.Debug().Msg("read routine ended")
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				goapp.Log.Debug().Err(err).Msg("read failed")
				return
			}
			msg := strings.TrimSpace(string(message))
			goapp.Log.Debug().Str("ID", goapp.Sanitize(msg)).Msg("subscribe")
			if msg != "" {
				select {
				case readCh <- msg:
				case <-done:
					return
				}
			} else {
				time.Sleep(20 * time.Millisecond)
			}
		}
	}()

	ta := time.After(kp.timeOut)
loop:
	for {
		select {
		case <-ta:
			goapp.Log.Debug().Dur("after", kp.timeOut).Msg("conn timeouted")
			break loop
		case msg, ok := <-readCh:
			if !ok {
				goapp.Log.Debug().Msg("conn read closed?")
				break loop
			}
			kp.saveConnection(conn, msg)
			ta = time.After(kp.timeOut)
		}
	}
	goapp.Log.Debug().Msg("handleConnection finish")
	return nil
}

func (kp *WSConnKeeper) deleteConnection(conn WsConn) {
	kp.mapLock.Lock()
	defer kp.mapLock.Unlock()
	kp.deleteConnectionNoSync(conn)
}

func (kp *WSConnKeeper) deleteConnectionNoSync(conn WsConn) {
	id, found := kp.connectionIDMap[conn]
	if found {
		conns, found := kp.idConnectionMap[id]
		if found {
			delete(conns, conn)
			if len(conns) == 0 {
				delete(kp.idConnectionMap, id)
			}
		}
	}
	delete(kp.connectionIDMap, conn)
	goapp.Log.Debug().Int("active", len(kp.connectionIDMap)).Msg("connection deleted")
}

func (kp *WSConnKeeper) saveConnection(conn WsConn, id string) {
	kp.mapLock.Lock()
	defer kp.mapLock.Unlock()
	kp.deleteConnectionNoSync(conn)
	kp.connectionIDMap[conn] = id
	conns, found := kp.idConnectionMap[id]
	if !found {
		conns = map[WsConn]struct{}{}
		kp.idConnectionMap[id] = conns
	} else {
		goapp.Log.Debug().Str("ID", id).Msg("file already has subscribers")
	}
	conns[conn] = struct{}{}
	goapp.Log.Info().Str("ID", id).Int("active", len(kp.connectionIDMap)).Msg("subscribed")
}

// GetConnections returns saved connections by provided id
func (kp *WSConnKeeper) GetConnections(id string) ([]WsConn, bool) {
	kp.mapLock.Lock()
	defer kp.mapLock.Unlock()
	cm, found := kp.idConnectionMap[id]
	if found {
		res := make([]WsConn, 0, len(cm))
		for c := range cm {
			res = append(res, c)
		}
		return res, true
	}
	return nil, false
}
