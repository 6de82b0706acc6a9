package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Datagram is the transport unit carrying a pattern invocation or its reply.
// Pattern stays a plain string on the wire so that receivers can answer
// unknown patterns instead of failing to decode the frame.
type Datagram struct {
	ID        string          `json:"id" validate:"required"`
	Pattern   string          `json:"pattern" validate:"required"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Username  string          `json:"username,omitempty"`
	Err       string          `json:"err,omitempty"`
	User      *DatagramUser   `json:"user,omitempty"`
	CreatedAt time.Time       `json:"-"`
}

type DatagramUser struct {
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Email     string     `json:"email,omitempty"`
	Source    UserSource `json:"source,omitempty"`
}

// NewDatagram returns a datagram with a fresh id.
func NewDatagram(pattern string, payload json.RawMessage) *Datagram {
	return &Datagram{
		ID:        uuid.NewString(),
		Pattern:   pattern,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// Reply returns a datagram answering d with the given payload.
func (d *Datagram) Reply(payload json.RawMessage) *Datagram {
	return &Datagram{
		ID:        d.ID,
		Pattern:   d.Pattern,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

// UserSource names the system that issued a datagram on behalf of a user.
type UserSource string

const (
	SourceUser              UserSource = "user"
	SourceDemoController    UserSource = "demo-controller"
	SourceTaskService       UserSource = "task-service"
	SourceQueueService      UserSource = "queue-service"
	SourceK8sManagerService UserSource = "k8s-manager-service"
	SourceGitService        UserSource = "git-service"
)

var userSources = map[UserSource]bool{
	SourceUser:              true,
	SourceDemoController:    true,
	SourceTaskService:       true,
	SourceQueueService:      true,
	SourceK8sManagerService: true,
	SourceGitService:        true,
}

func (s UserSource) MarshalText() ([]byte, error) {
	if !userSources[s] {
		return nil, fmt.Errorf("unknown user source: %s", string(s))
	}
	return []byte(s), nil
}

func (s *UserSource) UnmarshalText(b []byte) error {
	v := UserSource(b)
	if !userSources[v] {
		return fmt.Errorf("unknown user source: %s", string(b))
	}
	*s = v
	return nil
}
