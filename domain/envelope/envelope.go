// Package envelope implements the uniform wrapper every response travels in:
//
//	{"status": "success"|"error", "message": "...", "data": ...}
//
// A success with no data means "no content". Callers that need to tell an
// empty value from an absent one use ResultPtr.
package envelope

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/kompox/patternapi/internal/codec"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var (
	// ErrRemoteFailure is matched by every *RemoteError.
	ErrRemoteFailure = errors.New("remote failure")
	// ErrNoContent is returned by Result when a success carries no data.
	ErrNoContent = errors.New("no content")
	ErrBadStatus = errors.New("invalid envelope status")
)

func (s Status) Valid() bool { return s == StatusSuccess || s == StatusError }

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrBadStatus, string(s))
	}
	return []byte(s), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v := Status(b)
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrBadStatus, string(b))
	}
	*s = v
	return nil
}

// RemoteError is an error status reported by the executor.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return "remote failure"
	}
	return "remote failure: " + e.Message
}

func (e *RemoteError) Is(target error) bool { return target == ErrRemoteFailure }

// Response is the typed envelope of a contract response.
type Response[T any] struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

// NewResponse builds the envelope for a handler outcome. A non-nil err wins
// over result.
func NewResponse[T any](result *T, err error) *Response[T] {
	if err != nil {
		return Failure[T](err.Error())
	}
	return Success(result)
}

func Success[T any](data *T) *Response[T] {
	return &Response[T]{Status: StatusSuccess, Data: data}
}

func Failure[T any](message string) *Response[T] {
	return &Response[T]{Status: StatusError, Message: message}
}

func (r *Response[T]) OK() bool { return r.Status == StatusSuccess }

// Err returns the *RemoteError of an error envelope, or nil.
func (r *Response[T]) Err() error {
	switch r.Status {
	case StatusSuccess:
		return nil
	case StatusError:
		return &RemoteError{Message: r.Message}
	default:
		return fmt.Errorf("%w: %q", ErrBadStatus, string(r.Status))
	}
}

// ResultPtr returns the data of a successful envelope, nil when absent.
// String payloads delivered through message are surfaced as data.
func (r *Response[T]) ResultPtr() (*T, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	if r.Data == nil && r.Message != "" {
		if v := reflect.ValueOf(new(T)); InMessage(v.Type().Elem()) {
			v.Elem().SetString(r.Message)
			return v.Interface().(*T), nil
		}
	}
	return r.Data, nil
}

// InMessage reports whether successful results of type t travel in the
// message field instead of data. Any string kind does, named types included.
func InMessage(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.String
}

// Result returns the data of a successful envelope. Absent data yields the
// zero value and ErrNoContent.
func (r *Response[T]) Result() (T, error) {
	var zero T
	p, err := r.ResultPtr()
	if err != nil {
		return zero, err
	}
	if p == nil {
		return zero, ErrNoContent
	}
	return *p, nil
}

// Raw is an envelope whose data is kept encoded.
type Raw struct {
	Status  Status         `json:"status"`
	Message string         `json:"message"`
	Data    codec.RawValue `json:"data,omitempty"`
}

// Parse decodes an encoded envelope keeping the data raw.
func Parse(b []byte) (*Raw, error) {
	var r Raw
	if err := codec.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if !r.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrBadStatus, string(r.Status))
	}
	return &r, nil
}

// Decode converts a raw envelope into a typed one.
func Decode[T any](r *Raw) (*Response[T], error) {
	out := &Response[T]{Status: r.Status, Message: r.Message}
	if codec.IsEmpty(r.Data) {
		return out, nil
	}
	out.Data = new(T)
	if err := codec.Unmarshal(r.Data, out.Data); err != nil {
		return nil, fmt.Errorf("decode envelope data: %w", err)
	}
	return out, nil
}

// Wrap encodes an already typed value into a raw envelope.
func Wrap(status Status, message string, data any) (*Raw, error) {
	r := &Raw{Status: status, Message: message}
	if data == nil {
		return r, nil
	}
	b, err := codec.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode envelope data: %w", err)
	}
	if !codec.IsEmpty(b) {
		r.Data = b
	}
	return r, nil
}
