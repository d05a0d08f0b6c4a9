package grpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// requestIDInterceptor attaches a fresh request id to the context and logs
// every call with its method and outcome, so concurrent protocol attempts
// can be told apart in the logs.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	requestID := uuid.NewString()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	s.logger.Debug(ctx, "Incoming request", "method", info.FullMethod, "request_id", requestID)

	resp, err := handler(ctx, req)

	if err != nil {
		s.logger.Debug(ctx, "Request failed", "method", info.FullMethod, "request_id", requestID, "error", err.Error())
	}

	return resp, err
}
