package interceptors

import (
	"context"
	"time"

	"github.com/JMURv/device-sessions/internal/auth/jwt"
	"github.com/JMURv/device-sessions/internal/config"
	metrics "github.com/JMURv/device-sessions/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Auth resolves the caller's uid from a bearer token when one is present.
// Unauthenticated calls pass through; health checks carry no token.
func Auth(au jwt.Port) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return handler(ctx, req)
		}

		authHeaders := md["authorization"]
		if len(authHeaders) == 0 {
			return handler(ctx, req)
		}

		tokenStr := authHeaders[0]
		if len(tokenStr) > 7 && tokenStr[:7] == "Bearer " {
			tokenStr = tokenStr[7:]
		}

		claims := au.Decode(ctx, tokenStr, au.Access())
		if claims == nil {
			return handler(ctx, req)
		}

		uid, err := claims.UID()
		if err != nil {
			return handler(ctx, req)
		}

		ctx = context.WithValue(ctx, config.UidKey, uid)
		return handler(ctx, req)
	}
}

func LogTraceMetrics() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		s := time.Now()
		span, ctx := opentracing.StartSpanFromContext(ctx, info.FullMethod)
		defer span.Finish()

		res, err := handler(ctx, req)
		statusCode := status.Code(err)
		metrics.ObserveRequest(time.Since(s), int(statusCode), info.FullMethod)

		zap.L().Info(
			"<--",
			zap.String("method", info.FullMethod),
			zap.Int("status", int(statusCode)),
			zap.Any("duration", time.Since(s)),
			zap.Error(err),
		)

		return res, err
	}
}
