package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hance08/caixa/internal/client"
	"github.com/hance08/caixa/internal/editor"
	"github.com/hance08/caixa/internal/ingest"
	"github.com/hance08/caixa/internal/model"
	"github.com/hance08/caixa/internal/reader"
	"github.com/hance08/caixa/internal/staging"
)

type State string

const (
	StateUpload  State = "upload"
	StatePreview State = "preview"
	StateEdit    State = "edit"
	StateSuccess State = "success"
)

var (
	ErrInvalidTransition = errors.New("action not allowed in the current step")

	// ErrNotReady is returned by Submit while the batch is empty or invalid.
	ErrNotReady  = errors.New("fix every validation error before submitting")
	ErrStaleEdit = errors.New("editor does not belong to the item being edited")
	ErrNoBackend = errors.New("no backend configured")
)

// BatchCreator is the bulk-create endpoint.
type BatchCreator interface {
	BulkCreate(ctx context.Context, txs []model.Transaction) (client.BulkResult, error)
}

type Options struct {
	User    model.User
	Backend BatchCreator
	// Drafts is optional; when set the staged list is saved after every change.
	Drafts  DraftStore
	Logger  *log.Logger
	Now     func() time.Time
}

// Session drives one import from file to submission:
// upload -> preview <-> edit, preview -> success.
// It is meant for a single goroutine.
type Session struct {
	opts Options
	log  *log.Logger

	id        string
	state     State
	source    string
	format    reader.Format
	createdAt time.Time

	store   *staging.Store
	editIdx int
	editor  *editor.Editor
	result  client.BulkResult
	saveErr error
}

func New(opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	s := &Session{opts: opts}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.id = uuid.NewString()
	s.log = s.opts.Logger.With("session", s.id)
	s.state = StateUpload
	s.source = ""
	s.format = ""
	s.createdAt = s.opts.Now()
	s.store = nil
	s.editIdx = -1
	s.editor = nil
	s.result = client.BulkResult{}
	s.saveErr = nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return s.state }

func (s *Session) Source() string { return s.source }

func (s *Session) Format() reader.Format { return s.format }

// Store is the staged list; nil before a file is loaded.
func (s *Session) Store() *staging.Store { return s.store }

// Result is the backend acknowledgement after a successful submit.
func (s *Session) Result() client.BulkResult { return s.result }

// EditingIndex is the index of the item open in the editor, or -1.
func (s *Session) EditingIndex() int { return s.editIdx }

// Load reads, normalizes and validates a file. On any read failure the
// session stays in upload.
func (s *Session) Load(ctx context.Context, path string, format reader.Format) error {
	if s.state != StateUpload {
		return s.invalid("load")
	}
	in, err := reader.ReadFile(ctx, path, format)
	if err != nil {
		s.log.Warn("file rejected", "path", path, "format", format, "err", err)
		return err
	}
	return s.LoadInput(in, format, filepath.Base(path))
}

// LoadInput stages an already read input. Validation errors do not block
// the move to preview.
func (s *Session) LoadInput(in reader.Input, format reader.Format, source string) error {
	if s.state != StateUpload {
		return s.invalid("load")
	}
	txs := ingest.Normalize(in, format, ingest.Options{User: s.opts.User, Now: s.opts.Now})
	s.store = staging.New(txs)
	s.source = source
	s.format = format
	s.transition(StatePreview)
	s.log.Info("batch staged", "source", source, "format", format, "items", s.store.Len(), "errors", s.store.Report().ErrorCount())
	s.autosave()
	return nil
}

// BeginEdit opens the item at index in a fresh editor.
func (s *Session) BeginEdit(index int) (*editor.Editor, error) {
	if s.state != StatePreview {
		return nil, s.invalid("edit")
	}
	tx, err := s.store.At(index)
	if err != nil {
		return nil, err
	}
	s.editIdx = index
	s.editor = editor.New(tx)
	s.transition(StateEdit)
	return s.editor, nil
}

// SaveEdit builds the editor's transaction and writes it back. A failed
// form check keeps the session in edit and leaves the store untouched.
func (s *Session) SaveEdit(ed *editor.Editor) error {
	if s.state != StateEdit {
		return s.invalid("save")
	}
	if ed != s.editor {
		return ErrStaleEdit
	}
	tx, err := ed.Build()
	if err != nil {
		s.log.Debug("edit rejected", "index", s.editIdx, "err", err)
		return err
	}
	if err := s.store.Replace(s.editIdx, tx); err != nil {
		return err
	}
	s.log.Info("item saved", "index", s.editIdx, "id", tx.Identificador, "valid", s.store.Valid())
	s.closeEditor()
	s.autosave()
	return nil
}

// CancelEdit returns to preview without changes.
func (s *Session) CancelEdit() error {
	if s.state != StateEdit {
		return s.invalid("cancel")
	}
	s.closeEditor()
	return nil
}

// Remove drops an item from the staged list.
func (s *Session) Remove(index int) error {
	if s.state != StatePreview {
		return s.invalid("remove")
	}
	tx, err := s.store.At(index)
	if err != nil {
		return err
	}
	if err := s.store.Remove(index); err != nil {
		return err
	}
	s.log.Info("item removed", "index", index, "id", tx.Identificador, "left", s.store.Len())
	s.autosave()
	return nil
}

// CanSubmit reports whether Submit would call the backend.
func (s *Session) CanSubmit() bool {
	return s.state == StatePreview && s.store != nil && s.store.Len() > 0 && s.store.Valid()
}

// Submit sends the staged list as one batch. Backend failures keep the
// session in preview with every staged item intact.
func (s *Session) Submit(ctx context.Context) (client.BulkResult, error) {
	if s.state != StatePreview {
		return client.BulkResult{}, s.invalid("submit")
	}
	if !s.CanSubmit() {
		return client.BulkResult{}, ErrNotReady
	}
	if s.opts.Backend == nil {
		return client.BulkResult{}, ErrNoBackend
	}

	items := s.store.Items()
	res, err := s.opts.Backend.BulkCreate(ctx, items)
	if err != nil {
		s.log.Error("submit failed", "items", len(items), "err", err)
		return client.BulkResult{}, err
	}

	s.result = res
	s.transition(StateSuccess)
	s.log.Info("batch submitted", "items", len(items))
	s.dropDraft()
	return res, nil
}

// Reset starts a new, empty session. It is allowed from success and, to
// abandon a file, from preview.
func (s *Session) Reset() error {
	if s.state == StateEdit {
		return s.invalid("reset")
	}
	s.reset()
	return nil
}

func (s *Session) closeEditor() {
	s.editor = nil
	s.editIdx = -1
	s.transition(StatePreview)
}

func (s *Session) transition(to State) {
	s.log.Debug("state change", "from", s.state, "to", to)
	s.state = to
}

func (s *Session) invalid(action string) error {
	return fmt.Errorf("%w: cannot %s while in %s", ErrInvalidTransition, action, s.state)
}
