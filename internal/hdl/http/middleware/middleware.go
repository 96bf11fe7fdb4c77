package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/JMURv/device-sessions/internal/auth/jwt"
	"github.com/JMURv/device-sessions/internal/config"
	"github.com/JMURv/device-sessions/internal/hdl"
	"github.com/JMURv/device-sessions/internal/hdl/http/utils"
	metrics "github.com/JMURv/device-sessions/internal/observability/metrics/prometheus"
	"github.com/JMURv/device-sessions/internal/session"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Auth decodes the access token from the cookie or the Authorization
// header and puts the caller's uid into the context.
func Auth(au jwt.Port) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				token := ""
				if cookie, err := r.Cookie(config.AccessCookieName); err == nil {
					token = cookie.Value
				} else if v := r.Header.Get("Authorization"); strings.HasPrefix(v, "Bearer ") {
					token = strings.TrimPrefix(v, "Bearer ")
				}

				if token == "" {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
					return
				}

				claims := au.Decode(r.Context(), token, au.Access())
				if claims == nil {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
					return
				}

				uid, err := claims.UID()
				if err != nil {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, uid)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// Device puts the request's user agent and client IP into the context so
// handlers can build a device fingerprint from them.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), config.UaKey, r.UserAgent())
			ctx = context.WithValue(ctx, config.IpKey, clientIP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// Session loads the caller's tracked session from the sid cookie. A sid
// unknown to the store starts a fresh session for the authenticated uid;
// requests without a cookie, or with a malformed one, pass through
// untouched.
func Session(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				cookie, err := r.Cookie(config.SessionCookieName)
				if err != nil || !session.ValidSID(cookie.Value) {
					next.ServeHTTP(w, r)
					return
				}

				s, err := store.Get(r.Context(), cookie.Value)
				if err != nil {
					uid, ok := utils.UIDFromCtx(r.Context())
					if !ok {
						next.ServeHTTP(w, r)
						return
					}
					s = session.New(cookie.Value, uid)
				}

				ctx := context.WithValue(r.Context(), config.SessionKey, s)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			op := fmt.Sprintf("%s %s", r.Method, r.RequestURI)

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.RequestURI))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
