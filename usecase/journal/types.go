package journal

import "github.com/kompox/patternapi/domain"

// Repos holds repositories needed for journal use cases.
type Repos struct {
	Call domain.CallRecordRepository
}

// UseCase wires repositories needed for journal use cases.
type UseCase struct {
	Repos *Repos
}
