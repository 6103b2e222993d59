package main

import (
	"errors"
	"net/http"
	"net/url"
	"venuedir/internal/store"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

var errInvalidCredentials = errors.New("Invalid nickname or password")

type credentialsForm struct {
	Nickname string `validate:"required,max=50"`
	Password string `validate:"required,max=72"`
}

func credentialsFromForm(r *http.Request) (credentialsForm, error) {
	if err := r.ParseForm(); err != nil {
		return credentialsForm{}, err
	}
	form := credentialsForm{
		Nickname: r.PostFormValue("nickname"),
		Password: r.PostFormValue("password"),
	}
	return form, Validate.Struct(form)
}

// registerUserHandler handles POST /register/. The nickname existence check
// and the insert are two separate statements; the UNIQUE constraint on
// nickname backstops the race between concurrent registrations.
func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	form, err := credentialsFromForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	_, err = app.store.Users.GetByNickname(ctx, form.Nickname)
	switch {
	case err == nil:
		app.badRequestResponse(w, r, errors.New("nickname already taken"))
		return
	case !errors.Is(err, store.ErrNotFound):
		app.internalServerError(w, r, err)
		return
	}

	user := &store.User{Nickname: form.Nickname}
	if err := user.Password.Set(form.Password); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateNickname) {
			app.badRequestResponse(w, r, errors.New("nickname already taken"))
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("user registered", "nickname", user.Nickname)

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// loginUserHandler handles POST /login/. A missing nickname and a wrong
// password produce byte-identical responses so the login form never reveals
// which nicknames exist.
func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	form, err := credentialsFromForm(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	user, err := app.store.Users.GetByNickname(ctx, form.Nickname)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			app.badRequestResponse(w, r, errInvalidCredentials)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := user.Password.Compare(form.Password); err != nil {
		app.badRequestResponse(w, r, errInvalidCredentials)
		return
	}

	session, err := app.store.Sessions.Create(ctx, user.ID, app.config.Session.TTL)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.setSessionCookie(w, session.Token)

	app.logger.Infow("user logged in", "nickname", user.Nickname)

	// The nickname in the redirect URL is display-only and spoofable; the
	// session cookie is the verifiable identity.
	http.Redirect(w, r, "/welcome?nickname="+url.QueryEscape(user.Nickname), http.StatusSeeOther)
}

func (app *application) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     app.config.Session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   app.config.Env == "production",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(app.config.Session.TTL.Seconds()),
	})
}
