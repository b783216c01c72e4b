package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/common"
)

// RequestIDInterceptor stamps every call with a request id and logs the
// method with its outcome. The id rides the context so downstream layers
// and queued jobs can correlate their log lines.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc failed", "method", info.FullMethod, "request_id", requestID, "elapsed_ms", elapsed.Milliseconds(), "error", err)
		} else {
			logger.Info("rpc ok", "method", info.FullMethod, "request_id", requestID, "elapsed_ms", elapsed.Milliseconds())
		}
		return resp, err
	}
}
