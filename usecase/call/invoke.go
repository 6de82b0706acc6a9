package call

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/kompox/patternapi/domain/contract"
	"github.com/kompox/patternapi/domain/envelope"
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
	"github.com/kompox/patternapi/internal/codec"
	"github.com/kompox/patternapi/internal/logging"
)

// InvokeInput is an untyped call.
type InvokeInput struct {
	// Pattern is a wire string or a normalized identifier.
	Pattern string `json:"pattern"`
	// Payload is the JSON request; empty for patterns without input.
	Payload []byte `json:"payload,omitempty"`
}

// InvokeOutput carries the reply of an untyped call.
type InvokeOutput struct {
	Pattern  pattern.Pattern `json:"pattern"`
	Envelope *envelope.Raw   `json:"envelope"`
	// Result is a pointer to the registered response type, nil when the
	// envelope is an error or carries no data.
	Result any               `json:"-"`
	Call   *model.CallRecord `json:"-"`
}

// Invoke resolves the pattern, checks the payload against its contract and
// dispatches it. Remote failures are reported in the envelope, not as an error.
func (u *UseCase) Invoke(ctx context.Context, in *InvokeInput) (*InvokeOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil input", model.ErrInvalidRequest)
	}
	p, err := pattern.Resolve(in.Pattern)
	if err != nil {
		return nil, err
	}
	d, ok := contract.Lookup(p)
	if !ok {
		return nil, fmt.Errorf("%w: %s", contract.ErrNotRegistered, p)
	}
	req, err := d.DecodeRequest(in.Payload)
	if err != nil {
		return nil, err
	}
	var payload []byte
	if !d.EmptyRequest() {
		if payload, err = codec.Marshal(req); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	raw, rec, err := u.dispatch(ctx, p, payload)
	if err != nil {
		return nil, err
	}
	out := &InvokeOutput{Pattern: p, Envelope: raw, Call: rec}
	if raw.Status != envelope.StatusSuccess {
		return out, nil
	}
	switch {
	case !codec.IsEmpty(raw.Data):
		if out.Result, err = d.DecodeResponse(raw.Data); err != nil {
			return nil, err
		}
	case envelope.InMessage(d.ResponseType()) && raw.Message != "":
		v := reflect.New(d.ResponseType())
		v.Elem().SetString(raw.Message)
		out.Result = v.Interface()
	}
	return out, nil
}

// dispatch sends one datagram and records the outcome in the journal.
func (u *UseCase) dispatch(ctx context.Context, p pattern.Pattern, payload []byte) (*envelope.Raw, *model.CallRecord, error) {
	if u.Executor == nil {
		return nil, nil, fmt.Errorf("%w: no executor configured", model.ErrExecutorClosed)
	}
	if u.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.Timeout)
		defer cancel()
	}
	logger := logging.FromContext(ctx)

	dg := model.NewDatagram(p.String(), payload)
	dg.Username = u.Username
	start := time.Now()
	rec := &model.CallRecord{
		DatagramID: dg.ID,
		Pattern:    dg.Pattern,
		Username:   u.Username,
		CreatedAt:  start.UTC(),
	}

	logger.Debug(ctx, "dispatch", "pattern", dg.Pattern, "id", dg.ID)
	reply, err := u.Executor.Execute(ctx, dg)
	if err == nil && reply.ID != dg.ID {
		err = fmt.Errorf("%w: sent %s, got %s", model.ErrDatagramMismatch, dg.ID, reply.ID)
	}
	var raw *envelope.Raw
	if err == nil {
		raw, err = envelope.Parse(reply.Payload)
	}
	rec.Duration = time.Since(start)
	if err != nil {
		rec.Status, rec.Message = StatusFailed, err.Error()
		u.record(ctx, rec)
		return nil, rec, fmt.Errorf("call %s: %w", p, err)
	}
	rec.Status, rec.Message = string(raw.Status), raw.Message
	u.record(ctx, rec)
	logger.Debug(ctx, "reply", "pattern", dg.Pattern, "status", raw.Status, "duration", rec.Duration)
	return raw, rec, nil
}

func (u *UseCase) record(ctx context.Context, rec *model.CallRecord) {
	if u.Repos == nil || u.Repos.Call == nil {
		return
	}
	if err := u.Repos.Call.Create(ctx, rec); err != nil {
		logging.FromContext(ctx).Warn(ctx, "journal write failed", "pattern", rec.Pattern, "error", err)
	}
}
