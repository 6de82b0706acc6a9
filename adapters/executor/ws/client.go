// Package ws carries pattern datagrams over a websocket connection.
package ws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/internal/codec"
	"github.com/kompox/patternapi/internal/logging"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 16 << 20
)

// Options configures Dial.
type Options struct {
	URL      string
	Header   http.Header
	Username string
	Dialer   *websocket.Dialer
}

// Client is an executor sending datagrams to a remote server. Replies are
// matched to requests by datagram id; a Client is safe for concurrent use.
type Client struct {
	conn     *websocket.Conn
	username string

	wmu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan *model.Datagram
	err     error
	done    chan struct{}
}

// Dial connects to the server at opts.URL.
func Dial(ctx context.Context, opts Options) (*Client, error) {
	dialer := opts.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, resp, err := dialer.DialContext(ctx, opts.URL, opts.Header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %s)", opts.URL, err, resp.Status)
		}
		return nil, fmt.Errorf("dial %s: %w", opts.URL, err)
	}
	conn.SetReadLimit(maxMessageSize)
	c := &Client{
		conn:     conn,
		username: opts.Username,
		pending:  map[string]chan *model.Datagram{},
		done:     make(chan struct{}),
	}
	go c.readLoop(logging.FromContext(ctx))
	return c, nil
}

func (c *Client) readLoop(logger logging.Logger) {
	ctx := context.Background()
	var err error
	defer func() { c.shutdown(err) }()
	for {
		var b []byte
		if _, b, err = c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn(ctx, "websocket read failed", "error", err)
			}
			return
		}
		var d model.Datagram
		if uerr := codec.Unmarshal(b, &d); uerr != nil {
			logger.Warn(ctx, "dropping undecodable datagram", "error", uerr)
			continue
		}
		c.mu.Lock()
		ch, ok := c.pending[d.ID]
		delete(c.pending, d.ID)
		c.mu.Unlock()
		if !ok {
			logger.Debug(ctx, "dropping unsolicited datagram", "id", d.ID, "pattern", d.Pattern)
			continue
		}
		ch <- &d
	}
}

func (c *Client) shutdown(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return
	}
	c.err = model.ErrExecutorClosed
	if err != nil {
		c.err = fmt.Errorf("%w: %v", model.ErrExecutorClosed, err)
	}
	close(c.done)
}

// Execute sends d and waits for the reply with the same id.
func (c *Client) Execute(ctx context.Context, d *model.Datagram) (*model.Datagram, error) {
	if d.Username == "" {
		d.Username = c.username
	}
	b, err := codec.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode datagram: %w", err)
	}

	ch := make(chan *model.Datagram, 1)
	c.mu.Lock()
	if c.err != nil {
		err := c.err
		c.mu.Unlock()
		return nil, err
	}
	c.pending[d.ID] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, d.ID)
		c.mu.Unlock()
	}()

	if err := c.write(ctx, b); err != nil {
		return nil, err
	}

	select {
	case reply := <-ch:
		if reply.Pattern != d.Pattern {
			return nil, fmt.Errorf("%w: sent %s, got %s", model.ErrDatagramMismatch, d.Pattern, reply.Pattern)
		}
		if reply.Err != "" {
			return nil, fmt.Errorf("remote: %s", reply.Err)
		}
		return reply, nil
	case <-c.done:
		c.mu.Lock()
		defer c.mu.Unlock()
		return nil, c.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) write(ctx context.Context, b []byte) error {
	deadline := time.Now().Add(writeWait)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return fmt.Errorf("write datagram: %w", err)
	}
	return nil
}

// Close sends a close frame and releases the connection. Pending calls fail
// with model.ErrExecutorClosed.
func (c *Client) Close() error {
	c.wmu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	werr := c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	c.wmu.Unlock()
	cerr := c.conn.Close()
	c.shutdown(nil)
	if werr != nil && !errors.Is(werr, websocket.ErrCloseSent) {
		return errors.Join(werr, cerr)
	}
	return cerr
}

var _ model.Executor = (*Client)(nil)
