// Package client wraps the generated gRPC stub for the authentication
// service, translating transport errors into the client's sentinel
// errors.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/reymom/zkp-chaum-pedersen/internal/proto"
)

type GRPCClient struct {
	endpointURL    string
	requestTimeout time.Duration
	conn           *grpc.ClientConn
	client         pb.AuthClient
}

func NewAuthClient(endpointURL string, requestTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

// Register sends the registration commitments for userName.
func (s *GRPCClient) Register(ctx context.Context, userName string, y1, y2 []byte) error {

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	req := &pb.RegisterRequest{User: userName, Y1: y1, Y2: y2}

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil
}

// CreateAuthChallenge sends the per-attempt commitments and returns the
// minted auth_id together with the server's challenge c.
func (s *GRPCClient) CreateAuthChallenge(ctx context.Context, userName string, r1, r2 []byte) (string, []byte, error) {

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	req := &pb.AuthChallengeRequest{User: userName, R1: r1, R2: r2}

	resp, err := s.client.CreateAuthChallenge(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}

	return resp.AuthId, resp.C, nil
}

// VerifyAuth submits the answer s for auth_id and returns the session id
// on success.
func (s *GRPCClient) VerifyAuth(ctx context.Context, authID string, answer []byte) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	req := &pb.AuthAnswerRequest{AuthId: authID, S: answer}

	resp, err := s.client.VerifyAuth(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.SessionId, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return ErrUserNotFound
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
