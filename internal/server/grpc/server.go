// Package grpc exposes the authentication service over gRPC.
package grpc

import (
	"context"
	"math/big"
	"net"

	"google.golang.org/grpc"

	"github.com/reymom/zkp-chaum-pedersen/internal/logging"
	pb "github.com/reymom/zkp-chaum-pedersen/internal/proto"
)

// authSvc is the protocol engine surface the handlers need. The concrete
// implementation is services.AuthService; tests substitute a fake.
type authSvc interface {
	Register(ctx context.Context, name string, y1, y2 []byte) error
	CreateChallenge(ctx context.Context, name string, r1, r2 []byte) (string, *big.Int, error)
	VerifyAuth(ctx context.Context, authID string, answer []byte) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as authSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor))

	// registers service
	pb.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
