package main

import (
	"errors"
	"net/http"
	"strconv"
	"venuedir/internal/store"

	"github.com/go-chi/chi/v5"
)

type resultsPage struct {
	Query  string
	Filter store.VenueFilter
	Venues []store.Venue
}

type venuePage struct {
	Venue *store.Venue
}

// searchVenuesHandler serves /search-venues/?query=. An empty query lists
// the whole catalog.
func (app *application) searchVenuesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	venues, err := app.store.Venues.Search(r.Context(), query)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "results.html", resultsPage{Query: query, Venues: venues})
}

// filterVenuesHandler serves /filter-venues/ with any combination of the
// form's fields; multi-valued fields repeat the query key.
func (app *application) filterVenuesHandler(w http.ResponseWriter, r *http.Request) {
	filter := store.VenueFilter{}.Parse(r.URL.Query())

	venues, err := app.store.Venues.Filter(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "results.html", resultsPage{Filter: filter, Venues: venues})
}

func (app *application) getVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "venueID")
	vID, err := strconv.ParseInt(venueID, 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid venue ID"))
		return
	}

	venue, err := app.store.Venues.GetByID(r.Context(), vID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.notFoundResponse(w, r, errors.New("Venue not found"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "venue.html", venuePage{Venue: venue})
}
