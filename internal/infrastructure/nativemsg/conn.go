package nativemsg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bnema/tabstash/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by calls made after the connection stopped.
var ErrClosed = errors.New("native messaging connection closed")

// RemoteError is an error reported by the browser side.
type RemoteError struct {
	Type    string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// RequestHandler answers a request from the browser. The returned value is
// encoded as the response payload.
type RequestHandler func(ctx context.Context, env Envelope) (any, error)

// Conn multiplexes requests in both directions over one stdin/stdout pair.
type Conn struct {
	r io.Reader
	w io.Writer

	out     chan Envelope
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]chan Envelope
	done    chan struct{}
	closed  bool
}

// NewConn creates a connection. timeout bounds every outgoing call that has no
// earlier deadline.
func NewConn(r io.Reader, w io.Writer, timeout time.Duration) *Conn {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Conn{
		r:       r,
		w:       w,
		out:     make(chan Envelope, 16),
		timeout: timeout,
		pending: make(map[string]chan Envelope),
		done:    make(chan struct{}),
	}
}

// Serve runs the reader and writer loops until the browser closes stdin,
// ctx is cancelled or a frame cannot be written.
func (c *Conn) Serve(ctx context.Context, handler RequestHandler) error {
	log := logging.FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.writeLoop(gctx)
	})

	// Unblock the reader when the host is asked to stop.
	if closer, ok := c.r.(io.Closer); ok {
		go func() {
			select {
			case <-gctx.Done():
				_ = closer.Close()
			case <-c.done:
			}
		}()
	}

	g.Go(func() error {
		defer c.shutdown()
		err := c.readLoop(gctx, handler)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || gctx.Err() != nil {
			log.Info().Msg("browser closed native messaging pipe")
			return errStopped
		}
		return err
	})

	err := g.Wait()
	if errors.Is(err, errStopped) {
		return nil
	}
	return err
}

// errStopped ends the errgroup on a clean EOF.
var errStopped = errors.New("stopped")

func (c *Conn) readLoop(ctx context.Context, handler RequestHandler) error {
	var inflight sync.WaitGroup
	defer inflight.Wait()

	for {
		env, err := ReadEnvelope(c.r)
		if err != nil {
			return err
		}

		if env.Type == TypeResponse {
			c.deliver(ctx, env)
			continue
		}

		inflight.Add(1)
		go func(env Envelope) {
			defer inflight.Done()
			c.handle(ctx, handler, env)
		}(env)
	}
}

func (c *Conn) handle(ctx context.Context, handler RequestHandler, env Envelope) {
	log := logging.FromContext(ctx)
	if env.RequestID != "" {
		ctx = logging.WithRequestID(ctx, env.RequestID)
	}

	result, err := handler(ctx, env)
	if env.RequestID == "" {
		if err != nil {
			log.Warn().Err(err).Str("type", env.Type).Msg("native message failed")
		}
		return
	}

	resp := Envelope{Type: TypeResponse, RequestID: env.RequestID}
	if err != nil {
		resp.Error = err.Error()
	} else if result != nil {
		raw, encErr := json.Marshal(result)
		if encErr != nil {
			resp.Error = encErr.Error()
		} else {
			resp.Payload = raw
		}
	}
	resp = c.fitResponse(ctx, resp)
	if err := c.Send(ctx, resp); err != nil {
		log.Debug().Err(err).Str("type", env.Type).Msg("response not sent")
	}
}

// fitResponse swaps a response the browser would refuse for an error
// response, so the caller is not left waiting for a reply that never comes.
func (c *Conn) fitResponse(ctx context.Context, resp Envelope) Envelope {
	data, err := json.Marshal(resp)
	if err == nil && len(data) <= MaxOutgoingSize {
		return resp
	}
	if err == nil {
		err = fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(data))
	}
	logging.FromContext(ctx).Warn().Err(err).Str("request_id", resp.RequestID).Msg("response replaced by error")
	return Envelope{Type: TypeResponse, RequestID: resp.RequestID, Error: err.Error()}
}

func (c *Conn) deliver(ctx context.Context, env Envelope) {
	c.mu.Lock()
	ch, ok := c.pending[env.RequestID]
	delete(c.pending, env.RequestID)
	c.mu.Unlock()

	if !ok {
		logging.FromContext(ctx).Debug().Str("request_id", env.RequestID).Msg("response for unknown request")
		return
	}
	ch <- env
}

func (c *Conn) writeLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-c.done:
			return nil
		case env := <-c.out:
			if err := WriteEnvelope(c.w, env); err != nil {
				if errors.Is(err, ErrMessageTooLarge) {
					logging.FromContext(ctx).Error().Err(err).Str("type", env.Type).Msg("dropping oversized message")
					c.failPending(env.RequestID, err)
					continue
				}
				return fmt.Errorf("write native message: %w", err)
			}
		}
	}
}

// Send queues an envelope for the writer loop.
func (c *Conn) Send(ctx context.Context, env Envelope) error {
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case c.out <- env:
		return nil
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Call sends a request to the browser and decodes the response payload into out.
func (c *Conn) Call(ctx context.Context, msgType string, payload, out any) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	env, err := NewEnvelope(msgType, uuid.NewString(), payload)
	if err != nil {
		return err
	}

	reply := make(chan Envelope, 1)
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.pending[env.RequestID] = reply
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, env.RequestID)
		c.mu.Unlock()
	}()

	if err := c.Send(ctx, env); err != nil {
		return err
	}

	select {
	case resp := <-reply:
		if resp.Error != "" {
			return &RemoteError{Type: msgType, Message: resp.Error}
		}
		if out == nil || len(resp.Payload) == 0 {
			return nil
		}
		if err := json.Unmarshal(resp.Payload, out); err != nil {
			return fmt.Errorf("decode %s response: %w", msgType, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", msgType, ctx.Err())
	case <-c.done:
		return ErrClosed
	}
}

func (c *Conn) failPending(requestID string, err error) {
	if requestID == "" {
		return
	}
	c.mu.Lock()
	ch, ok := c.pending[requestID]
	delete(c.pending, requestID)
	c.mu.Unlock()
	if ok {
		ch <- Envelope{Type: TypeResponse, RequestID: requestID, Error: err.Error()}
	}
}

func (c *Conn) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
}
