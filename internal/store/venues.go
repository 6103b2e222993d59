package store

import (
	"context"
	"database/sql"
	"strings"
)

// Venue represents one catalog row. Venues are seeded out-of-band and the
// application never writes to them, so the store only exposes reads.
type Venue struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	Playground      string `json:"playground"`
	Fenced          string `json:"fenced"`
	QuietZones      string `json:"quiet_zones"`
	Colors          string `json:"colors"`
	Smells          string `json:"smells"`
	FoodOwn         string `json:"food_own"`
	DefinedDuration string `json:"defined_duration"`
	Quiet           string `json:"quiet"`
	Crowdedness     string `json:"crowdedness"`
	FoodVariety     string `json:"food_variey"` // column name keeps the schema's spelling
	PhotoURL        string `json:"photo_url"`
}

// VenueRef is the id+name pair used by selection controls.
type VenueRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

const selectVenueColumns = `
	SELECT id, name, address, playground, fenced, quiet_zones, colors, smells,
	       food_own, defined_duration, quiet, crowdedness, food_variey, photo_url
	FROM venues`

// searchColumns are the free-text columns matched by Search. The ordinal
// columns (quiet, crowdedness, food_variey) are deliberately not in the list.
var searchColumns = []string{
	"name", "address", "playground", "fenced", "quiet_zones",
	"colors", "smells", "food_own", "defined_duration", "photo_url",
}

type VenuesStore struct {
	db *sql.DB
}

// GetByID retrieves a single venue by its ID.
func (s *VenuesStore) GetByID(ctx context.Context, venueID int64) (*Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	row := s.db.QueryRowContext(ctx, selectVenueColumns+` WHERE id = ?`, venueID)

	var v Venue
	if err := scanVenue(row, &v); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Search matches the query as a substring against every free-text column,
// OR-combined. An empty query returns the whole catalog in natural order.
func (s *VenuesStore) Search(ctx context.Context, query string) ([]Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	q := selectVenueColumns
	var args []any
	if query != "" {
		clauses := make([]string, len(searchColumns))
		for i, col := range searchColumns {
			clauses[i] = col + " LIKE ?"
			args = append(args, "%"+query+"%")
		}
		q += " WHERE " + strings.Join(clauses, " OR ")
	}

	return s.queryVenues(ctx, q, args...)
}

// Filter applies the conjunctive predicate built from f. A filter with no
// effective constraints selects everything.
func (s *VenuesStore) Filter(ctx context.Context, f VenueFilter) ([]Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	q := selectVenueColumns
	where, args := f.Build()
	if where != "" {
		q += " WHERE " + where
	}

	return s.queryVenues(ctx, q, args...)
}

// ListRefs returns every venue's id and name for dropdowns.
func (s *VenuesStore) ListRefs(ctx context.Context) ([]VenueRef, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM venues`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []VenueRef
	for rows.Next() {
		var ref VenueRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (s *VenuesStore) queryVenues(ctx context.Context, query string, args ...any) ([]Venue, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		if err := scanVenue(rows, &v); err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner, v *Venue) error {
	return row.Scan(
		&v.ID,
		&v.Name,
		&v.Address,
		&v.Playground,
		&v.Fenced,
		&v.QuietZones,
		&v.Colors,
		&v.Smells,
		&v.FoodOwn,
		&v.DefinedDuration,
		&v.Quiet,
		&v.Crowdedness,
		&v.FoodVariety,
		&v.PhotoURL,
	)
}
