package call

import (
	"context"
	"fmt"

	"github.com/kompox/patternapi/domain/contract"
	"github.com/kompox/patternapi/domain/envelope"
	"github.com/kompox/patternapi/internal/codec"
)

// Do performs a typed call. The returned error covers contract and transport
// failures; an error status stays in the envelope, see Response.Result.
func Do[Req, Resp any](ctx context.Context, u *UseCase, c contract.Contract[Req, Resp], req *Req) (*envelope.Response[Resp], error) {
	d := c.Descriptor()
	if d == nil {
		return nil, fmt.Errorf("%w: zero contract", contract.ErrNotRegistered)
	}
	if err := c.Validate(req); err != nil {
		return nil, err
	}
	var payload []byte
	if req != nil && !d.EmptyRequest() {
		b, err := codec.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		payload = b
	}
	raw, _, err := u.dispatch(ctx, c.Pattern(), payload)
	if err != nil {
		return nil, err
	}
	return envelope.Decode[Resp](raw)
}

// Result is Do followed by Response.Result. Void contracts never report
// envelope.ErrNoContent.
func Result[Req, Resp any](ctx context.Context, u *UseCase, c contract.Contract[Req, Resp], req *Req) (Resp, error) {
	resp, err := Do(ctx, u, c, req)
	if err != nil {
		var zero Resp
		return zero, err
	}
	if c.Descriptor().Void() {
		var zero Resp
		return zero, resp.Err()
	}
	return resp.Result()
}
