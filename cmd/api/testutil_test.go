package main

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"venuedir/internal/ratelimiter"
	"venuedir/internal/store"
	"venuedir/internal/web"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*application, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema(db))

	templates, err := web.NewTemplates()
	require.NoError(t, err)

	cfg := config{
		Env: "test",
		Session: sessionConfig{
			TTL:        time.Hour,
			CookieName: "venuedir_session",
		},
		RateLimiter: ratelimiter.Config{Enabled: false},
	}

	app := &application{
		config:      cfg,
		logger:      zap.NewNop().Sugar(),
		store:       store.NewStorage(db),
		templates:   templates,
		rateLimiter: ratelimiter.NewFixedWindow(100, time.Second),
	}
	return app, db
}

func insertVenue(t *testing.T, db *sql.DB, name, playground, fenced string) int64 {
	t.Helper()

	res, err := db.Exec(`
		INSERT INTO venues (name, address, playground, fenced)
		VALUES (?, ?, ?, ?)`,
		name, "1 Test Street", playground, fenced,
	)
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func doGet(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, handler http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
