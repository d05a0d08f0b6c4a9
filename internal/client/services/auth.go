// Package services contains the prover-side application service for the
// CLI: it derives the secret exponent from the passphrase, produces the
// protocol commitments and computes the challenge response.
package services

import (
	"context"
	"fmt"
	"math/big"

	"github.com/reymom/zkp-chaum-pedersen/internal/zkp"
)

// Client is the remote surface the prover needs. The concrete
// implementation is client.GRPCClient; tests can provide a fake.
type Client interface {
	Register(ctx context.Context, userName string, y1, y2 []byte) error
	CreateAuthChallenge(ctx context.Context, userName string, r1, r2 []byte) (string, []byte, error)
	VerifyAuth(ctx context.Context, authID string, answer []byte) (string, error)
}

// AuthService implements the prover side of the protocol.
type AuthService struct {
	client Client
	group  *zkp.Group
	rand   zkp.Source
}

func NewAuthService(client Client, group *zkp.Group, rand zkp.Source) *AuthService {
	return &AuthService{client: client, group: group, rand: rand}
}

// secretFromPassword interprets the passphrase bytes as a big-endian
// integer, exactly how the registration commitments expect the secret.
// No key derivation is applied.
func secretFromPassword(password []byte) *big.Int {
	return new(big.Int).SetBytes(password)
}

// Register computes y1 = alpha^x, y2 = beta^x for the secret derived from
// password and registers them under userName.
func (a *AuthService) Register(ctx context.Context, userName string, password []byte) error {
	x := secretFromPassword(password)
	y1, y2 := a.group.Commit(x)

	return a.client.Register(ctx, userName, y1.Bytes(), y2.Bytes())
}

// Login runs a full authentication attempt: draw a fresh nonce k, send the
// commitments r1 = alpha^k and r2 = beta^k, answer the server's challenge
// with s = k - c*x mod q, and return the minted session id.
func (a *AuthService) Login(ctx context.Context, userName string, password []byte) (string, error) {
	x := secretFromPassword(password)

	k, err := a.rand.IntBelow(a.group.Q)
	if err != nil {
		return "", fmt.Errorf("drawing nonce: %w", err)
	}
	r1, r2 := a.group.CommitRandom(k)

	authID, cBytes, err := a.client.CreateAuthChallenge(ctx, userName, r1.Bytes(), r2.Bytes())
	if err != nil {
		return "", err
	}

	s := a.group.Respond(k, new(big.Int).SetBytes(cBytes), x)

	return a.client.VerifyAuth(ctx, authID, s.Bytes())
}
