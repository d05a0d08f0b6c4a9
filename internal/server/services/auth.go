// Package services contains the server-side protocol engine: the
// authentication service that sequences registration, challenge issuance
// and proof verification over the shared session state.
package services

import (
	"context"
	"fmt"
	"math/big"

	"github.com/reymom/zkp-chaum-pedersen/internal/common"
	"github.com/reymom/zkp-chaum-pedersen/internal/server/auth"
	"github.com/reymom/zkp-chaum-pedersen/internal/server/config"
	"github.com/reymom/zkp-chaum-pedersen/internal/server/sessions"
	"github.com/reymom/zkp-chaum-pedersen/internal/zkp"
)

// maxTokenAttempts bounds auth_id re-minting on index collisions. With
// 62^12 possible tokens a second attempt is already vanishingly rare.
const maxTokenAttempts = 5

// AuthService orchestrates the three protocol operations. All state lives
// in the injected registry and index; the service itself is stateless and
// safe for concurrent use. No lock is ever held while the service draws
// randomness or performs group arithmetic.
type AuthService struct {
	group *zkp.Group
	rand  zkp.Source
	users *sessions.Registry
	index *sessions.AuthIndex
	cfg   *config.Config
}

func NewAuthService(group *zkp.Group, rand zkp.Source, users *sessions.Registry, index *sessions.AuthIndex, cfg *config.Config) *AuthService {
	return &AuthService{group: group, rand: rand, users: users, index: index, cfg: cfg}
}

// Register stores the commitments (y1, y2) for name, overwriting any
// previous registration. No proof of prior ownership is required; see the
// protocol note on zkp_auth.proto.
func (s *AuthService) Register(ctx context.Context, name string, y1, y2 []byte) error {
	s.users.Save(&sessions.UserRecord{
		Name: name,
		Y1:   new(big.Int).SetBytes(y1),
		Y2:   new(big.Int).SetBytes(y2),
	})
	return nil
}

// CreateChallenge stores the per-attempt commitments (r1, r2) for name,
// draws a fresh challenge c from [0, q) and mints an auth_id for the
// attempt. A new challenge replaces any in-flight one for the same
// identity, so only the most recent can be verified.
func (s *AuthService) CreateChallenge(ctx context.Context, name string, r1, r2 []byte) (string, *big.Int, error) {
	c, err := s.rand.IntBelow(s.group.Q)
	if err != nil {
		return "", nil, fmt.Errorf("drawing challenge: %w", common.ErrorInternal)
	}

	if err := s.users.AttachChallenge(name, new(big.Int).SetBytes(r1), new(big.Int).SetBytes(r2), c); err != nil {
		return "", nil, err
	}

	// The registry lock is released; only now touch the auth index.
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		authID, err := s.rand.Token(s.cfg.AuthIDLength)
		if err != nil {
			return "", nil, fmt.Errorf("minting auth_id: %w", common.ErrorInternal)
		}
		if s.index.PutIfAbsent(authID, name) {
			return authID, c, nil
		}
	}
	return "", nil, fmt.Errorf("auth_id collisions exhausted retries: %w", common.ErrorInternal)
}

// VerifyAuth checks the prover's answer s against the stored commitments
// and challenge for the identity behind authID. On success it mints a
// session token; on a failed check it returns ErrorVerificationFailed,
// which is an expected negative outcome rather than a system error.
func (s *AuthService) VerifyAuth(ctx context.Context, authID string, answer []byte) (string, error) {
	name, err := s.index.Resolve(authID)
	if err != nil {
		return "", err
	}

	rec, err := s.users.Get(name)
	if err != nil {
		return "", err
	}

	// Re-registration replaces the whole record, clearing any in-flight
	// challenge; an answer to a cleared challenge cannot verify.
	if rec.C == nil {
		return "", fmt.Errorf("auth_id %q: %w", authID, common.ErrorVerificationFailed)
	}

	if !s.group.Verify(rec.R1, rec.R2, rec.Y1, rec.Y2, rec.C, new(big.Int).SetBytes(answer)) {
		return "", fmt.Errorf("auth_id %q: %w", authID, common.ErrorVerificationFailed)
	}

	sessionID, err := auth.GenerateSessionToken(name, []byte(s.cfg.SecretKey), s.cfg.SessionValidityDuration)
	if err != nil {
		return "", fmt.Errorf("minting session token: %w", common.ErrorInternal)
	}
	return sessionID, nil
}
