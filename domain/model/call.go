package model

import (
	"context"
	"time"
)

// CallRecord is one dispatched pattern invocation as seen by the caller.
type CallRecord struct {
	ID         string
	DatagramID string
	Pattern    string
	Username   string
	Status     string
	Message    string
	Duration   time.Duration
	CreatedAt  time.Time
}

// Executor is the port to whatever performs a pattern remotely. It receives a
// request datagram and returns the reply datagram whose payload is the
// response envelope.
type Executor interface {
	Execute(ctx context.Context, d *Datagram) (*Datagram, error)
}
