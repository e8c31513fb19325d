package health

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/tair/shop-admin/pkg/logger"
)

// LoggingInterceptor logs gRPC requests
func LoggingInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	event := logger.Logger.Debug()
	if err != nil {
		event = logger.Logger.Error().Err(err)
	}
	event.
		Str("method", info.FullMethod).
		Dur("duration", duration).
		Msg("gRPC request")

	return resp, err
}
