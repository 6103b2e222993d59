package main

import (
	"errors"
	"net/http"
	"venuedir/internal/store"
)

type dashboardPage struct {
	Nickname string
	Reviews  []store.Review
	Venues   []store.VenueRef
}

// welcomeHandler serves the review dashboard. The nickname query parameter
// is required and trusted for display only; when a session cookie is
// present it is cross-checked and a mismatch is logged.
func (app *application) welcomeHandler(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")
	if nickname == "" {
		app.badRequestResponse(w, r, errors.New("Nickname not found in the request"))
		return
	}

	ctx := r.Context()

	if cookie, err := r.Cookie(app.config.Session.CookieName); err == nil {
		session, err := app.store.Sessions.Get(ctx, cookie.Value)
		if err == nil {
			if user, err := app.store.Users.GetByID(ctx, session.UserID); err == nil && user.Nickname != nickname {
				app.logger.Warnw("nickname does not match session identity",
					"requested", nickname, "session_user", user.Nickname)
			}
		}
	}

	reviews, err := app.store.Reviews.List(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	venues, err := app.store.Venues.ListRefs(ctx)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "dashboard.html", dashboardPage{
		Nickname: nickname,
		Reviews:  reviews,
		Venues:   venues,
	})
}
