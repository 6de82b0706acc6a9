// Package local executes pattern datagrams in process through typed handlers.
package local

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/kompox/patternapi/domain/contract"
	"github.com/kompox/patternapi/domain/envelope"
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
	"github.com/kompox/patternapi/internal/codec"
	"github.com/kompox/patternapi/internal/logging"
)

// MessagePatternNotFound is the error message for unknown patterns.
const MessagePatternNotFound = "Pattern not found"

type handler func(ctx context.Context, payload []byte) (any, error)

// Mux routes datagrams to the handler registered for their pattern.
type Mux struct {
	mu       sync.RWMutex
	handlers map[pattern.Pattern]handler
}

func NewMux() *Mux {
	return &Mux{handlers: map[pattern.Pattern]handler{}}
}

// Handle registers fn for the pattern of c. Registering a pattern twice
// panics.
func Handle[Req, Resp any](m *Mux, c contract.Contract[Req, Resp], fn func(ctx context.Context, req *Req) (*Resp, error)) {
	p := c.Pattern()
	if !p.Valid() {
		panic("local: handle with zero contract")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.handlers[p]; dup {
		panic(fmt.Sprintf("local: handler for %s registered twice", p))
	}
	m.handlers[p] = func(ctx context.Context, payload []byte) (any, error) {
		req, err := c.DecodeRequest(payload)
		if err != nil {
			return nil, err
		}
		resp, err := fn(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp == nil {
			return nil, nil
		}
		return resp, nil
	}
}

// Handled reports whether p has a handler.
func (m *Mux) Handled(p pattern.Pattern) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.handlers[p]
	return ok
}

// Unhandled lists registry patterns without a handler, ordered by wire string.
func (m *Mux) Unhandled() []pattern.Pattern {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []pattern.Pattern
	for _, p := range pattern.All() {
		if _, ok := m.handlers[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// Dispatch runs the handler for a wire pattern and always returns an
// envelope. Failures become error envelopes.
func (m *Mux) Dispatch(ctx context.Context, wire string, payload []byte) *envelope.Raw {
	logger := logging.FromContext(ctx)

	p, err := pattern.Parse(wire)
	if err != nil {
		logger.Warn(ctx, "pattern not found", "pattern", wire)
		return &envelope.Raw{Status: envelope.StatusError, Message: MessagePatternNotFound}
	}
	m.mu.RLock()
	h, ok := m.handlers[p]
	m.mu.RUnlock()
	if !ok {
		logger.Warn(ctx, "no handler", "pattern", wire)
		return &envelope.Raw{Status: envelope.StatusError, Message: model.ErrHandlerMissing.Error() + ": " + wire}
	}

	result, err := h(ctx, payload)
	if err != nil {
		logger.Info(ctx, "handler failed", "pattern", wire, "error", err)
		return &envelope.Raw{Status: envelope.StatusError, Message: err.Error()}
	}
	return newMessageResponse(result)
}

// newMessageResponse places string results in message and everything else in
// data.
func newMessageResponse(result any) *envelope.Raw {
	switch result.(type) {
	case nil, *contract.Void:
		return &envelope.Raw{Status: envelope.StatusSuccess}
	}
	rv := reflect.ValueOf(result)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return &envelope.Raw{Status: envelope.StatusSuccess}
		}
		rv = rv.Elem()
	}
	if envelope.InMessage(rv.Type()) {
		return &envelope.Raw{Status: envelope.StatusSuccess, Message: rv.String()}
	}
	raw, err := envelope.Wrap(envelope.StatusSuccess, "", result)
	if err != nil {
		return &envelope.Raw{Status: envelope.StatusError, Message: err.Error()}
	}
	return raw
}

// Execute implements model.Executor. The reply carries the request id and an
// encoded envelope as payload.
func (m *Mux) Execute(ctx context.Context, d *model.Datagram) (*model.Datagram, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil datagram", model.ErrInvalidRequest)
	}
	ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With("datagram", d.ID))
	resp := m.Dispatch(ctx, d.Pattern, d.Payload)
	b, err := codec.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode envelope: %w", err)
	}
	return d.Reply(b), nil
}

var _ model.Executor = (*Mux)(nil)
