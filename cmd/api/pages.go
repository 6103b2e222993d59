package main

import (
	"bytes"
	"net/http"
)

// render executes a template into a buffer first so a template failure still
// gets a clean 500 instead of a half-written page.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := app.templates.Render(&buf, page, data); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (app *application) indexHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "index.html", nil)
}

func (app *application) signupPageHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "signup.html", nil)
}

func (app *application) loginPageHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "login.html", nil)
}
