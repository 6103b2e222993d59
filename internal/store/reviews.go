package store

import (
	"context"
	"database/sql"
	"time"
)

type Review struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"review_text"`
	CreatedAt time.Time `json:"timestamp"`

	// Joined fields
	Nickname  string `json:"nickname,omitempty"`
	VenueName string `json:"venue_name,omitempty"`
}

type ReviewStore struct {
	db *sql.DB
}

// Create inserts a review. There is no public endpoint for this yet; the
// seed tool is the only producer.
func (s *ReviewStore) Create(ctx context.Context, review *Review) error {
	query := `
        INSERT INTO reviews (review_text, timestamp, user_id, venue_id)
        VALUES (?, ?, ?, ?)
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, query,
		review.Text,
		review.CreatedAt,
		review.UserID,
		review.VenueID,
	)
	if err != nil {
		return err
	}

	review.ID, err = res.LastInsertId()
	return err
}

// List returns every review with its author nickname and venue name, most
// recent first. Reviews whose user or venue row is gone drop out of the join.
func (s *ReviewStore) List(ctx context.Context) ([]Review, error) {
	query := `
        SELECT r.id, r.venue_id, r.user_id, r.review_text, r.timestamp,
               u.nickname, v.name AS venue_name
        FROM reviews r
        JOIN users u ON r.user_id = u.id
        JOIN venues v ON r.venue_id = v.id
        ORDER BY r.timestamp DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.VenueID,
			&review.UserID,
			&review.Text,
			&review.CreatedAt,
			&review.Nickname,
			&review.VenueName,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
