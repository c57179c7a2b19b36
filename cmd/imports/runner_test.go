package imports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/caixa/internal/app"
	"github.com/hance08/caixa/internal/config"
	"github.com/hance08/caixa/internal/reader"
	"github.com/hance08/caixa/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, handler http.HandlerFunc) *app.App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewDefault()
	cfg.API.BaseURL = srv.URL
	cfg.API.Token = "secret"
	cfg.User = config.UserConfig{ID: "u-42", Name: "Ana"}
	cfg.Database.Path = filepath.Join(t.TempDir(), "caixa.db")

	a, cleanup, err := app.NewApp(cfg, os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return a
}

func TestSessionRunner_YesSubmitsValidBatch(t *testing.T) {
	var received int
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Transacoes []json.RawMessage `json:"transacoes"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received = len(body.Transacoes)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"mensagem":"2 transações importadas","ids":["a","b"]}`))
	})

	sess := a.Service.Import.NewSession()
	in := reader.Rows{Header: []string{"valor", "descricao"}, Data: [][]string{{"100", "Salário"}, {"-50", "Mercado"}}}
	require.NoError(t, sess.LoadInput(in, reader.FormatCSV, "extrato.csv"))

	err := NewSessionRunner(a, sess).Run(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 2, received)
	assert.Equal(t, session.StateSuccess, sess.State())
}

func TestSessionRunner_YesRefusesInvalidBatch(t *testing.T) {
	called := false
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	sess := a.Service.Import.NewSession()
	in := reader.Rows{Header: []string{"valor", "descricao"}, Data: [][]string{{"100", "Salário"}, {"0", "Nada"}}}
	require.NoError(t, sess.LoadInput(in, reader.FormatCSV, "extrato.csv"))

	err := NewSessionRunner(a, sess).Run(context.Background(), true)

	assert.ErrorIs(t, err, ErrBatchInvalid)
	assert.False(t, called)
	assert.Equal(t, session.StatePreview, sess.State())
}

func TestSessionRunner_YesKeepsPreviewOnServerError(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"erro":"Categoria inexistente"}`))
	})

	sess := a.Service.Import.NewSession()
	in := reader.Rows{Header: []string{"valor", "descricao"}, Data: [][]string{{"100", "Salário"}}}
	require.NoError(t, sess.LoadInput(in, reader.FormatCSV, "extrato.csv"))

	err := NewSessionRunner(a, sess).Run(context.Background(), true)

	require.Error(t, err)
	assert.Equal(t, "Categoria inexistente", err.Error())
	assert.Equal(t, session.StatePreview, sess.State())
	assert.Equal(t, 1, sess.Store().Len())
}

func TestQuitNotice(t *testing.T) {
	msg, saved := quitNotice("abc", nil)
	assert.True(t, saved)
	assert.Contains(t, msg, "caixa import --resume abc")

	msg, saved = quitNotice("abc", session.ErrDraftsDisabled)
	assert.False(t, saved)
	assert.NotContains(t, msg, "Draft saved")

	msg, saved = quitNotice("abc", errors.New("disk full"))
	assert.False(t, saved)
	assert.Contains(t, msg, "disk full")
}
