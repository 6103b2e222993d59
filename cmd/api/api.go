package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"venuedir/internal/ratelimiter"
	"venuedir/internal/store"
	"venuedir/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type application struct {
	config      config
	store       store.Storage
	logger      *zap.SugaredLogger
	templates   *web.Templates
	rateLimiter ratelimiter.Limiter
}

type config struct {
	Addr        string             `env:"ADDR" envDefault:":8080"`
	Env         string             `env:"ENV" envDefault:"development"`
	DB          dbConfig           `envPrefix:"DB_"`
	Auth        authConfig         `envPrefix:"AUTH_"`
	Session     sessionConfig      `envPrefix:"SESSION_"`
	RateLimiter ratelimiter.Config `envPrefix:"RATELIMITER_"`
}

type dbConfig struct {
	Path         string `env:"PATH" envDefault:"venues.db"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
	MaxIdleTime  string `env:"MAX_IDLE_TIME" envDefault:"15m"`
}

type authConfig struct {
	BasicUser string `env:"BASIC_USER" envDefault:"admin"`
	BasicPass string `env:"BASIC_PASS" envDefault:"admin"`
}

type sessionConfig struct {
	TTL        time.Duration `env:"TTL" envDefault:"72h"`
	CookieName string        `env:"COOKIE" envDefault:"venuedir_session"`
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(app.RateLimiterMiddleware)

	r.Get("/", app.indexHandler)
	r.Get("/signup", app.signupPageHandler)
	r.Get("/login", app.loginPageHandler)

	r.Get("/search-venues/", app.searchVenuesHandler)
	r.Get("/filter-venues/", app.filterVenuesHandler)
	r.Get("/venue/{venueID}", app.getVenueHandler)

	r.Post("/register/", app.registerUserHandler)
	r.Post("/login/", app.loginUserHandler)
	r.Get("/welcome", app.welcomeHandler)

	r.Get("/health", app.healthCheckHandler)
	r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

	r.Handle("/static/*", web.Static())

	return r
}

func (app *application) run(mux http.Handler) error {
	srv := &http.Server{
		Addr:         app.config.Addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.Addr, "env", app.config.Env)

	return nil
}
