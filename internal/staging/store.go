package staging

import (
	"errors"
	"fmt"

	"github.com/hance08/caixa/internal/ingest"
	"github.com/hance08/caixa/internal/model"
)

var ErrIndexOutOfRange = errors.New("staged item index out of range")

// Store holds the transactions of one import session together with the
// latest validation report. Every mutation re-validates, so positional
// indices in the report always match the current list.
// A Store is not safe for concurrent use.
type Store struct {
	items  []model.Transaction
	saved  map[string]bool
	report model.Report
	byID   map[string][]string
	byPos  map[int][]string
}

// New stages txs and validates them.
func New(txs []model.Transaction) *Store {
	s := &Store{
		items: make([]model.Transaction, len(txs)),
		saved: make(map[string]bool),
	}
	for i, tx := range txs {
		s.items[i] = tx.Clone()
	}
	s.revalidate()
	return s
}

func (s *Store) Len() int { return len(s.items) }

// Items returns a copy of the staged list.
func (s *Store) Items() []model.Transaction {
	out := make([]model.Transaction, len(s.items))
	for i, tx := range s.items {
		out[i] = tx.Clone()
	}
	return out
}

func (s *Store) At(index int) (model.Transaction, error) {
	if err := s.check(index); err != nil {
		return model.Transaction{}, err
	}
	return s.items[index].Clone(), nil
}

// IndexOf returns the current position of the item with identificador id,
// or -1.
func (s *Store) IndexOf(id string) int {
	for i, tx := range s.items {
		if tx.Identificador == id {
			return i
		}
	}
	return -1
}

// Replace overwrites the item at index, marks it saved and re-validates.
// The identifier of the staged item is kept.
func (s *Store) Replace(index int, tx model.Transaction) error {
	if err := s.check(index); err != nil {
		return err
	}
	tx = tx.Clone()
	tx.Identificador = s.items[index].Identificador
	s.items[index] = tx
	s.saved[tx.Identificador] = true
	s.revalidate()
	return nil
}

// Remove drops the item at index. Later items shift down by one.
func (s *Store) Remove(index int) error {
	if err := s.check(index); err != nil {
		return err
	}
	delete(s.saved, s.items[index].Identificador)
	s.items = append(s.items[:index], s.items[index+1:]...)
	s.revalidate()
	return nil
}

// ErrorsFor returns the violations of the item currently at index.
func (s *Store) ErrorsFor(index int) []string {
	return s.byPos[index]
}

// ErrorsByID returns the violations of every item keyed by id.
func (s *Store) ErrorsByID(id string) []string {
	return s.byID[id]
}

func (s *Store) Saved(index int) bool {
	if s.check(index) != nil {
		return false
	}
	return s.saved[s.items[index].Identificador]
}

func (s *Store) Report() model.Report { return s.report }

func (s *Store) Valid() bool { return s.report.Valido }

// Snapshot is the persisted form of a Store.
type Snapshot struct {
	Items []model.Transaction `json:"items"`
	Saved []string            `json:"saved"`
}

func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{Items: s.Items()}
	for _, tx := range s.items {
		if s.saved[tx.Identificador] {
			snap.Saved = append(snap.Saved, tx.Identificador)
		}
	}
	return snap
}

// Restore rebuilds a Store from a snapshot.
func Restore(snap Snapshot) *Store {
	s := New(snap.Items)
	for _, id := range snap.Saved {
		s.saved[id] = true
	}
	return s
}

func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(s.items))
	}
	return nil
}

func (s *Store) revalidate() {
	s.report = ingest.Validate(s.items)
	s.byID = make(map[string][]string, len(s.report.Erros))
	s.byPos = make(map[int][]string, len(s.report.Erros))
	for _, e := range s.report.Erros {
		s.byPos[e.Indice] = e.Erros
		s.byID[e.Identificador] = append(s.byID[e.Identificador], e.Erros...)
	}
}
