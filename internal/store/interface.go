package store

type Repository interface {
	SaveDraft(d Draft) error
	GetDraft(id string) (*Draft, error)
	ListDrafts(userID string) ([]*Draft, error)
	DeleteDraft(id string) error

	Close() error
}
