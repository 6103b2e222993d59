package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side login token set as an HttpOnly cookie. It
// exists because the nickname-in-URL identity on /welcome is spoofable by
// construction; the cookie is the verifiable half of that flow.
type Session struct {
	Token     string    `json:"-"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SessionsStore struct {
	db *sql.DB
}

func (s *SessionsStore) Create(ctx context.Context, userID int64, ttl time.Duration) (*Session, error) {
	session := &Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl).UTC(),
	}

	query := `INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, query, session.Token, session.UserID, session.ExpiresAt); err != nil {
		return nil, err
	}
	return session, nil
}

// Get resolves a token to its session. Expired tokens behave like missing ones.
func (s *SessionsStore) Get(ctx context.Context, token string) (*Session, error) {
	query := `SELECT token, user_id, expires_at FROM sessions WHERE token = ? AND expires_at > ?`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	session := &Session{}
	err := s.db.QueryRowContext(ctx, query, token, time.Now().UTC()).Scan(
		&session.Token,
		&session.UserID,
		&session.ExpiresAt,
	)
	if err != nil {
		switch err {
		case sql.ErrNoRows:
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}
	return session, nil
}
