package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateNickname = errors.New("a user with that nickname already exists")
	QueryTimeoutDuration = time.Second * 5
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema applies the embedded schema. Every statement is
// IF NOT EXISTS so it is safe to run on an already populated file.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schemaSQL)
	return err
}

type Storage struct {
	Venues interface {
		GetByID(context.Context, int64) (*Venue, error)
		Search(context.Context, string) ([]Venue, error)
		Filter(context.Context, VenueFilter) ([]Venue, error)
		ListRefs(context.Context) ([]VenueRef, error)
	}
	Users interface {
		Create(context.Context, *User) error
		GetByID(context.Context, int64) (*User, error)
		GetByNickname(context.Context, string) (*User, error)
	}
	Reviews interface {
		Create(context.Context, *Review) error
		List(context.Context) ([]Review, error)
	}
	Sessions interface {
		Create(context.Context, int64, time.Duration) (*Session, error)
		Get(context.Context, string) (*Session, error)
	}
}

func NewStorage(db *sql.DB) Storage {
	return Storage{
		Venues:   &VenuesStore{db},
		Users:    &UsersStore{db},
		Reviews:  &ReviewStore{db},
		Sessions: &SessionsStore{db},
	}
}
