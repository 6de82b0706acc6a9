// Package contract binds every pattern to exactly one request shape and one
// response shape.
//
// Contracts are declared once as typed package variables, which makes them
// the compile-time accessor:
//
//	c := contract.GetUser // Contract[model.NameRequest, model.User]
//
// Every declaration also lands in a registry keyed by pattern. The registry is
// checked against the pattern enumeration at init, so a pattern without a
// contract, or a contract for a non-member, fails the program before any
// request is built.
package contract

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
	"github.com/kompox/patternapi/domain/schema"
	"github.com/kompox/patternapi/internal/codec"
)

// Empty is the request of patterns that take no input. It is satisfied by an
// absent payload as well as by {}.
type Empty struct{}

// Void is the response of patterns that deliver no data.
type Void struct{}

var (
	ErrContractMismatch = errors.New("contract mismatch")
	ErrNotRegistered    = errors.New("pattern has no contract")
)

// MismatchError reports a typed access whose types differ from the registry.
type MismatchError struct {
	Pattern      pattern.Pattern
	WantRequest  reflect.Type
	WantResponse reflect.Type
	GotRequest   reflect.Type
	GotResponse  reflect.Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("contract mismatch for %s: registered (%s, %s), requested (%s, %s)",
		e.Pattern, e.WantRequest, e.WantResponse, e.GotRequest, e.GotResponse)
}

func (e *MismatchError) Is(target error) bool { return target == ErrContractMismatch }

// Descriptor is the runtime view of one contract. Descriptors are created
// during package initialization and never change afterwards.
type Descriptor struct {
	pattern           pattern.Pattern
	request           reflect.Type
	response          reflect.Type
	deprecated        bool
	deprecatedMessage string
	stream            bool

	schemaOnce     sync.Once
	requestSchema  *schema.Schema
	responseSchema *schema.Schema
	schemaErr      error
}

func (d *Descriptor) Pattern() pattern.Pattern   { return d.pattern }
func (d *Descriptor) RequestType() reflect.Type  { return d.request }
func (d *Descriptor) ResponseType() reflect.Type { return d.response }
func (d *Descriptor) Deprecated() bool           { return d.deprecated }
func (d *Descriptor) DeprecatedMessage() string  { return d.deprecatedMessage }

// Stream reports patterns that only open a side channel; their data never
// travels in the envelope.
func (d *Descriptor) Stream() bool { return d.stream }

// Void reports whether the response carries no data.
func (d *Descriptor) Void() bool { return d.response == voidType }

// EmptyRequest reports whether the request takes no input.
func (d *Descriptor) EmptyRequest() bool { return d.request == emptyType }

// NewRequest returns a pointer to a fresh request value.
func (d *Descriptor) NewRequest() any { return reflect.New(d.request).Interface() }

// NewResponse returns a pointer to a fresh response value.
func (d *Descriptor) NewResponse() any { return reflect.New(d.response).Interface() }

// DecodeRequest strictly decodes and validates a payload into a fresh
// request value. The returned value is a pointer.
func (d *Descriptor) DecodeRequest(payload []byte) (any, error) {
	req := d.NewRequest()
	if err := codec.DecodeStrict(payload, req); err != nil {
		return nil, &ValidationError{Pattern: d.pattern, Err: err}
	}
	if err := validateValue(d.pattern, req); err != nil {
		return nil, err
	}
	return req, nil
}

// DecodeResponse decodes envelope data into a fresh response value. Unknown
// fields are tolerated.
func (d *Descriptor) DecodeResponse(data []byte) (any, error) {
	resp := d.NewResponse()
	if codec.IsEmpty(data) {
		return resp, nil
	}
	if err := codec.Unmarshal(data, resp); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrInvalidResponse, d.pattern, err)
	}
	return resp, nil
}

// Schemas returns the generated request and response schemas. They are
// computed on first use. Empty requests and void responses have nil schemas.
func (d *Descriptor) Schemas() (req, resp *schema.Schema, err error) {
	d.schemaOnce.Do(func() {
		if !d.EmptyRequest() {
			d.requestSchema, d.schemaErr = schema.GenerateType(d.request)
			if d.schemaErr != nil {
				return
			}
		}
		if !d.Void() {
			d.responseSchema, d.schemaErr = schema.GenerateType(d.response)
		}
	})
	return d.requestSchema, d.responseSchema, d.schemaErr
}

// Config returns the published description of the contract.
func (d *Descriptor) Config() (model.PatternConfig, error) {
	req, resp, err := d.Schemas()
	if err != nil {
		return model.PatternConfig{}, fmt.Errorf("schema for %s: %w", d.pattern, err)
	}
	return model.PatternConfig{
		RequestSchema:     req,
		ResponseSchema:    resp,
		Deprecated:        d.deprecated,
		DeprecatedMessage: d.deprecatedMessage,
	}, nil
}

var (
	emptyType = reflect.TypeFor[Empty]()
	voidType  = reflect.TypeFor[Void]()

	registry = map[pattern.Pattern]*Descriptor{}
)

type Option func(*Descriptor)

func deprecated(msg string) Option {
	return func(d *Descriptor) {
		d.deprecated = true
		d.deprecatedMessage = msg
	}
}

func stream() Option {
	return func(d *Descriptor) { d.stream = true }
}

func define[Req, Resp any](p pattern.Pattern, opts ...Option) Contract[Req, Resp] {
	if !p.Valid() {
		panic(fmt.Sprintf("contract for non-member %s", p))
	}
	if _, dup := registry[p]; dup {
		panic(fmt.Sprintf("contract for %s defined twice", p))
	}
	d := &Descriptor{
		pattern:  p,
		request:  reflect.TypeFor[Req](),
		response: reflect.TypeFor[Resp](),
	}
	for _, o := range opts {
		o(d)
	}
	registry[p] = d
	return Contract[Req, Resp]{p: p}
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Validate checks that the registry covers exactly the pattern enumeration.
func Validate() error {
	var errs []error
	for _, p := range pattern.All() {
		if _, ok := registry[p]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNotRegistered, p))
		}
	}
	for p := range registry {
		if !p.Valid() {
			errs = append(errs, fmt.Errorf("contract for non-member %s", p))
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the descriptor of p. The same pointer is returned on every
// call.
func Lookup(p pattern.Pattern) (*Descriptor, bool) {
	d, ok := registry[p]
	return d, ok
}

// Descriptors returns every descriptor ordered like pattern.All.
func Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(registry))
	for _, p := range pattern.All() {
		if d, ok := registry[p]; ok {
			out = append(out, d)
		}
	}
	return slices.Clip(out)
}

// Contract is the typed handle of one pattern. The zero value is invalid.
type Contract[Req, Resp any] struct {
	p pattern.Pattern
}

func (c Contract[Req, Resp]) Pattern() pattern.Pattern { return c.p }

func (c Contract[Req, Resp]) Descriptor() *Descriptor { return registry[c.p] }

func (c Contract[Req, Resp]) NewRequest() *Req { return new(Req) }

// DecodeRequest strictly decodes and validates a payload.
func (c Contract[Req, Resp]) DecodeRequest(payload []byte) (*Req, error) {
	req := new(Req)
	if err := codec.DecodeStrict(payload, req); err != nil {
		return nil, &ValidationError{Pattern: c.p, Err: err}
	}
	if err := validateValue(c.p, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate runs the request's field rules.
func (c Contract[Req, Resp]) Validate(req *Req) error {
	if req == nil {
		req = new(Req)
	}
	return validateValue(c.p, req)
}

// For returns the typed contract of p after checking that Req and Resp are
// the registered types.
func For[Req, Resp any](p pattern.Pattern) (Contract[Req, Resp], error) {
	d, ok := registry[p]
	if !ok {
		if !p.Valid() {
			return Contract[Req, Resp]{}, &pattern.UnknownPatternError{Value: p.String()}
		}
		return Contract[Req, Resp]{}, fmt.Errorf("%w: %s", ErrNotRegistered, p)
	}
	req, resp := reflect.TypeFor[Req](), reflect.TypeFor[Resp]()
	if req != d.request || resp != d.response {
		return Contract[Req, Resp]{}, &MismatchError{
			Pattern:      p,
			WantRequest:  d.request,
			WantResponse: d.response,
			GotRequest:   req,
			GotResponse:  resp,
		}
	}
	return Contract[Req, Resp]{p: p}, nil
}
