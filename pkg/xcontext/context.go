package xcontext

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/hieuduy1751/paio/config"
	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/pkg/authenticator"
	"github.com/hieuduy1751/paio/pkg/logger"
	"gorm.io/gorm"
)

type (
	configsKey      struct{}
	loggerKey       struct{}
	dbKey           struct{}
	dbTxKey         struct{}
	tokenEngineKey  struct{}
	sessionStoreKey struct{}
	httpRequestKey  struct{}
	httpWriterKey   struct{}
	requestUserKey  struct{}
	errorKey        struct{}
	responseKey     struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		panic("no configs in context")
	}

	return cfg
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		panic("no logger in context")
	}

	return l
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the current database handle. If a transaction was opened with
// WithDBTransaction, the transaction handle is returned instead.
func DB(ctx context.Context) *gorm.DB {
	if holder, ok := ctx.Value(dbTxKey{}).(*txHolder); ok && holder.tx != nil {
		return holder.tx
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return db
}

type txHolder struct {
	tx *gorm.DB
}

// WithDBTransaction begins a database transaction and returns a context
// whose DB() resolves to it. The caller must defer WithRollbackDBTransaction
// and call WithCommitDBTransaction on success.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTxKey{}, &txHolder{tx: DB(ctx).Begin()})
}

// WithCommitDBTransaction commits the transaction in ctx if one is open.
func WithCommitDBTransaction(ctx context.Context) {
	holder, ok := ctx.Value(dbTxKey{}).(*txHolder)
	if !ok || holder.tx == nil {
		return
	}

	holder.tx.Commit()
	holder.tx = nil
}

// WithRollbackDBTransaction rollbacks the transaction in ctx if it has not
// been committed yet. It is a no-op after WithCommitDBTransaction.
func WithRollbackDBTransaction(ctx context.Context) {
	holder, ok := ctx.Value(dbTxKey{}).(*txHolder)
	if !ok || holder.tx == nil {
		return
	}

	holder.tx.Rollback()
	holder.tx = nil
}

func WithTokenEngine(ctx context.Context, engine authenticator.TokenEngine[model.AccessToken]) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine[model.AccessToken] {
	engine, ok := ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine[model.AccessToken])
	if !ok {
		panic("no token engine in context")
	}

	return engine
}

func WithSessionStore(ctx context.Context, store sessions.Store) context.Context {
	return context.WithValue(ctx, sessionStoreKey{}, store)
}

func SessionStore(ctx context.Context) sessions.Store {
	store, ok := ctx.Value(sessionStoreKey{}).(sessions.Store)
	if !ok {
		panic("no session store in context")
	}

	return store
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	r, ok := ctx.Value(httpRequestKey{}).(*http.Request)
	if !ok {
		return nil
	}

	return r
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	w, ok := ctx.Value(httpWriterKey{}).(http.ResponseWriter)
	if !ok {
		return nil
	}

	return w
}

type errorHolder struct {
	err error
}

type responseHolder struct {
	resp any
}

// WithErrorHolder prepares a slot for the handler error so that closers
// running after the handler can observe it. Set by the router only.
func WithErrorHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, errorKey{}, &errorHolder{})
}

func SetError(ctx context.Context, err error) {
	if holder, ok := ctx.Value(errorKey{}).(*errorHolder); ok {
		holder.err = err
	}
}

func Error(ctx context.Context) error {
	if holder, ok := ctx.Value(errorKey{}).(*errorHolder); ok {
		return holder.err
	}

	return nil
}

// WithResponseHolder prepares a slot for the handler response, readable by
// After middlewares and closers.
func WithResponseHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, responseKey{}, &responseHolder{})
}

func SetResponse(ctx context.Context, resp any) {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		holder.resp = resp
	}
}

func Response(ctx context.Context) any {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		return holder.resp
	}

	return nil
}

func WithRequestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, requestUserKey{}, userID)
}

// RequestUserID returns the authenticated user id of this request, or an
// empty string for anonymous requests.
func RequestUserID(ctx context.Context) string {
	id, ok := ctx.Value(requestUserKey{}).(string)
	if !ok {
		return ""
	}

	return id
}
