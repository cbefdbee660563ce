package router

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/hieuduy1751/paio/config"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/pkg/authenticator"
	"github.com/hieuduy1751/paio/pkg/logger"
	"github.com/hieuduy1751/paio/pkg/xcontext"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc can replace the request context by returning a non-nil one.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is decided, error or not.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux     *http.ServeMux
	baseCtx context.Context
	cfg     config.Configs

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, l logger.Logger) *Router {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, l)
	ctx = xcontext.WithDB(ctx, db)
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken))
	ctx = xcontext.WithSessionStore(ctx,
		sessions.NewCookieStore([]byte(cfg.Session.Secret)))

	return &Router{
		mux:     http.NewServeMux(),
		baseCtx: ctx,
		cfg:     cfg,
	}
}

// Branch returns a router sharing the same mux but with its own copy of the
// middleware chains. Routes registered on the branch keep the chains as they
// were at branch time.
func (r *Router) Branch() *Router {
	return &Router{
		mux:     r.mux,
		baseCtx: r.baseCtx,
		cfg:     r.cfg,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]MiddlewareFunc{}, r.afters...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   r.cfg.ApiServer.AllowOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r.mux)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}
