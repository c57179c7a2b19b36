package store

// Draft is an import session saved between runs. Payload is the staged
// list encoded by the session package.
type Draft struct {
	ID        string
	UserID    string
	Source    string
	Format    string
	Items     int
	Payload   []byte
	CreatedAt int64
	UpdatedAt int64
}
