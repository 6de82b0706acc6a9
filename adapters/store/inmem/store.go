package inmem

// Store groups the in-memory repositories.
type Store struct {
	CallRepo *CallRecordRepository
}

// NewStore creates a new in-memory store with all repositories.
func NewStore() *Store {
	return &Store{
		CallRepo: NewCallRecordRepository(),
	}
}
