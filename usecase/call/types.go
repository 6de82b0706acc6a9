package call

import (
	"time"

	"github.com/kompox/patternapi/domain"
	"github.com/kompox/patternapi/domain/model"
)

// Repos holds repositories needed for call use cases.
type Repos struct {
	// Call is the journal; nil disables recording.
	Call domain.CallRecordRepository
}

// UseCase dispatches pattern requests through an executor.
type UseCase struct {
	Repos    *Repos
	Executor model.Executor
	// Username is stamped on outgoing datagrams.
	Username string
	// Timeout bounds a single call when positive.
	Timeout time.Duration
}

// Journal statuses besides the envelope statuses.
const StatusFailed = "failed"
