package main

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, db := newTestApp(t)
	mux := app.mount()

	tests := []struct {
		name         string
		form         url.Values
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "valid registration redirects to login",
			form:         url.Values{"nickname": {"alice"}, "password": {"s3cret"}},
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/login",
		},
		{
			name:       "duplicate nickname",
			form:       url.Values{"nickname": {"alice"}, "password": {"other"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "nickname already taken",
		},
		{
			name:       "missing nickname",
			form:       url.Values{"password": {"s3cret"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password",
			form:       url.Values{"nickname": {"bob"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(t, mux, "/register/", tt.form)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users WHERE nickname = ?`, "alice").Scan(&count))
	assert.Equal(t, 1, count, "the duplicate attempt must not write a second row")

	var stored string
	require.NoError(t, db.QueryRow(`SELECT password FROM users WHERE nickname = ?`, "alice").Scan(&stored))
	assert.NotContains(t, stored, "s3cret", "plaintext never reaches the database")
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)
	mux := app.mount()

	rec := postForm(t, mux, "/register/", url.Values{"nickname": {"alice"}, "password": {"s3cret"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	t.Run("correct credentials redirect to welcome", func(t *testing.T) {
		rec := postForm(t, mux, "/login/", url.Values{"nickname": {"alice"}, "password": {"s3cret"}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/welcome?nickname=alice", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "venuedir_session", cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("wrong password and unknown nickname are indistinguishable", func(t *testing.T) {
		wrongPassword := postForm(t, mux, "/login/", url.Values{"nickname": {"alice"}, "password": {"nope"}})
		unknownNickname := postForm(t, mux, "/login/", url.Values{"nickname": {"mallory"}, "password": {"nope"}})

		assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
		assert.Equal(t, http.StatusBadRequest, unknownNickname.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownNickname.Body.String())
		assert.Contains(t, wrongPassword.Body.String(), "Invalid nickname or password")
	})
}
