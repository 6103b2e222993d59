package main

import (
	"fmt"
	"net/http"
)

// Every handler is a terminal error boundary: nothing propagates past these
// helpers. 500 bodies carry the error text, matching the existing clients'
// expectations; that leaks internals and is tracked as a follow-up hardening.

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err)

	http.Error(w, fmt.Sprintf("An error occurred: %v", err), http.StatusInternalServerError)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err)

	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err)

	http.Error(w, err.Error(), http.StatusNotFound)
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err)

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	http.Error(w, "rate limit exceeded, retry after: "+retryAfter, http.StatusTooManyRequests)
}
