package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"example.com/denine-prints/internal/infra/security"
)

const sessionHeader = "X-Cart-Session"

type ctxKey int

const ctxSessionKey ctxKey = iota

type cartSession struct {
	ID         string
	StorageKey string
}

func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			a.logger.Info("http request",
				zap.String("request_id", chimw.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func (a *API) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(sessionHeader))
		if token == "" {
			respondError(w, http.StatusUnauthorized, security.ErrInvalidSession)
			return
		}

		session, err := a.sessions.Parse(token)
		if err != nil {
			a.logger.Debug("rejecting cart session", zap.Error(err))
			respondError(w, http.StatusUnauthorized, security.ErrInvalidSession)
			return
		}

		ctx := context.WithValue(r.Context(), ctxSessionKey, &cartSession{
			ID:         session.ID,
			StorageKey: a.sessions.StorageKey(session.ID),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getCartSession(ctx context.Context) *cartSession {
	if s, ok := ctx.Value(ctxSessionKey).(*cartSession); ok {
		return s
	}
	return nil
}
