package grpc

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/reymom/zkp-chaum-pedersen/internal/common"
	pb "github.com/reymom/zkp-chaum-pedersen/internal/proto"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "user", req.User)

	if err := s.auth.Register(ctx, req.User, req.Y1, req.Y2); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "user", req.User)
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) CreateAuthChallenge(ctx context.Context, req *pb.AuthChallengeRequest) (*pb.AuthChallengeResponse, error) {

	s.logger.Info(ctx, "Challenge request", "user", req.User)

	authID, c, err := s.auth.CreateChallenge(ctx, req.User, req.R1, req.R2)

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, fmt.Sprintf("user %q not found", req.User))
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.AuthChallengeResponse{AuthId: authID, C: c.Bytes()}, nil
}

func (s *GRPCServer) VerifyAuth(ctx context.Context, req *pb.AuthAnswerRequest) (*pb.AuthAnswerResponse, error) {

	s.logger.Info(ctx, "Verification request", "auth_id", req.AuthId)

	sessionID, err := s.auth.VerifyAuth(ctx, req.AuthId, req.S)

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, fmt.Sprintf("auth_id %q not found", req.AuthId))
		}
		if errors.Is(err, common.ErrorVerificationFailed) {
			// Expected negative protocol outcome, not a bug.
			s.logger.Warn(ctx, "Verification failed", "auth_id", req.AuthId)
			return nil, status.Error(codes.PermissionDenied, fmt.Sprintf("auth_id %q sent an invalid challenge answer", req.AuthId))
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Authenticated", "auth_id", req.AuthId)
	return &pb.AuthAnswerResponse{SessionId: sessionID}, nil
}
