// Package comms is the protocol client: it owns the socket to the
// lobby server and feeds decoded events to the synchronization engine
// from a single goroutine, in server-delivery order.
package comms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/hollis-m/lobby-client/internal/engine"
)

const writeTimeout = 3 * time.Second

type Client struct {
	engine *engine.Engine
	log    *zap.Logger

	conn *websocket.Conn
	done chan struct{}
}

func NewClient(eng *engine.Engine, log *zap.Logger) *Client {
	return &Client{engine: eng, log: log}
}

// Connect dials the server and starts the read loop. The engine sees
// a Connected event before any server frame and a Disconnected event
// when the socket dies, whatever the cause.
func (c *Client) Connect(ctx context.Context, addr string) error {
	conn, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	c.conn = conn
	c.done = make(chan struct{})
	c.log.Info("connected", zap.String("addr", addr))

	c.engine.Apply(engine.Connected{})
	go c.readLoop(ctx, addr)
	return nil
}

func (c *Client) readLoop(ctx context.Context, addr string) {
	defer close(c.done)
	defer func() {
		c.log.Info("disconnected", zap.String("addr", addr))
		c.engine.Apply(engine.Disconnected{})
	}()

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			if !errors.Is(err, context.Canceled) {
				c.log.Warn("read failed", zap.Error(err))
			}
			return
		}

		ev, err := DecodeEvent(data)
		if err != nil {
			c.log.Warn("dropping frame", zap.Error(err))
			continue
		}
		if ev == nil {
			continue
		}

		if outcome := c.engine.Apply(ev); !outcome.Applied {
			c.log.Debug("event rejected", zap.String("reason", outcome.Reason))
		}
	}
}

// Request sends one outbound command. Fields of payload are flattened
// next to the cmd tag, matching the server's envelope shape.
func (c *Client) Request(ctx context.Context, cmd string, payload map[string]any) error {
	if c.conn == nil {
		return errors.New("not connected")
	}
	frame := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		frame[k] = v
	}
	frame["cmd"] = cmd
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", cmd, err)
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return c.conn.Write(ctx, websocket.MessageText, data)
}

// JoinBattle asks the server to put us in a lobby. The reply arrives
// as a join_response frame on the read loop.
func (c *Client) JoinBattle(ctx context.Context, lobbyID int) error {
	return c.Request(ctx, "c.lobby.join", map[string]any{"lobby_id": lobbyID})
}

// Disconnect closes the socket and waits for the read loop to finish
// dispatching.
func (c *Client) Disconnect() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close(websocket.StatusNormalClosure, "bye")
	<-c.done
	c.conn = nil
	return err
}
