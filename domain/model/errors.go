package model

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidResponse  = errors.New("invalid response")
	ErrHandlerMissing   = errors.New("no handler registered")
	ErrCallNotFound     = errors.New("call record not found")
	ErrCallInvalid      = errors.New("call record invalid")
	ErrExecutorClosed   = errors.New("executor closed")
	ErrDatagramMismatch = errors.New("reply datagram id mismatch")
)
