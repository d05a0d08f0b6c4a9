package services

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reymom/zkp-chaum-pedersen/internal/zkp"
)

// ---- fake client ----

type fakeClient struct {
	RegisterErr error

	ChallengeAuthID string
	ChallengeC      []byte
	ChallengeErr    error

	SessionID string
	VerifyErr error

	// captured arguments
	LastRegisterUser string
	LastY1           []byte
	LastY2           []byte

	LastChallengeUser string
	LastR1            []byte
	LastR2            []byte

	LastAuthID string
	LastS      []byte
}

func (f *fakeClient) Register(ctx context.Context, userName string, y1, y2 []byte) error {
	f.LastRegisterUser = userName
	f.LastY1 = append([]byte(nil), y1...)
	f.LastY2 = append([]byte(nil), y2...)
	return f.RegisterErr
}

func (f *fakeClient) CreateAuthChallenge(ctx context.Context, userName string, r1, r2 []byte) (string, []byte, error) {
	f.LastChallengeUser = userName
	f.LastR1 = append([]byte(nil), r1...)
	f.LastR2 = append([]byte(nil), r2...)
	return f.ChallengeAuthID, append([]byte(nil), f.ChallengeC...), f.ChallengeErr
}

func (f *fakeClient) VerifyAuth(ctx context.Context, authID string, answer []byte) (string, error) {
	f.LastAuthID = authID
	f.LastS = append([]byte(nil), answer...)
	return f.SessionID, f.VerifyErr
}

// ---- helpers ----

type fixedSource struct {
	k int64
}

func (s fixedSource) IntBelow(bound *big.Int) (*big.Int, error) { return big.NewInt(s.k), nil }
func (s fixedSource) Token(n int) (string, error)               { return "", nil }

func toyGroup() *zkp.Group {
	return &zkp.Group{
		P:     big.NewInt(23),
		Q:     big.NewInt(11),
		Alpha: big.NewInt(4),
		Beta:  big.NewInt(9),
	}
}

// ---- tests ----

func TestRegister_SendsCommitments(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, toyGroup(), fixedSource{})

	// password bytes read as x=6 give y1 = 4^6 mod 23 = 2, y2 = 9^6 mod 23 = 3
	err := svc.Register(context.Background(), "alice", []byte{6})
	require.NoError(t, err)

	assert.Equal(t, "alice", fc.LastRegisterUser)
	assert.Equal(t, []byte{2}, fc.LastY1)
	assert.Equal(t, []byte{3}, fc.LastY2)
}

func TestRegister_ErrorFromClient(t *testing.T) {
	fc := &fakeClient{RegisterErr: errors.New("dup")}
	svc := NewAuthService(fc, toyGroup(), fixedSource{})

	err := svc.Register(context.Background(), "alice", []byte{6})
	require.Error(t, err)
}

func TestLogin_FullRound(t *testing.T) {
	fc := &fakeClient{
		ChallengeAuthID: "token-1",
		ChallengeC:      []byte{4},
		SessionID:       "session-jwt",
	}
	// k=7 gives r1 = 4^7 mod 23 = 8, r2 = 9^7 mod 23 = 4
	svc := NewAuthService(fc, toyGroup(), fixedSource{k: 7})

	sessionID, err := svc.Login(context.Background(), "alice", []byte{6})
	require.NoError(t, err)
	assert.Equal(t, "session-jwt", sessionID)

	assert.Equal(t, "alice", fc.LastChallengeUser)
	assert.Equal(t, []byte{8}, fc.LastR1)
	assert.Equal(t, []byte{4}, fc.LastR2)

	// s = k - c*x mod q = 7 - 24 mod 11 = 5
	assert.Equal(t, "token-1", fc.LastAuthID)
	assert.Equal(t, []byte{5}, fc.LastS)
}

func TestLogin_ChallengeErrorPropagates(t *testing.T) {
	fc := &fakeClient{ChallengeErr: errors.New("not found")}
	svc := NewAuthService(fc, toyGroup(), fixedSource{k: 7})

	_, err := svc.Login(context.Background(), "ghost", []byte{6})
	require.Error(t, err)
}

func TestLogin_VerifyErrorPropagates(t *testing.T) {
	fc := &fakeClient{
		ChallengeAuthID: "token-1",
		ChallengeC:      []byte{4},
		VerifyErr:       errors.New("denied"),
	}
	svc := NewAuthService(fc, toyGroup(), fixedSource{k: 7})

	_, err := svc.Login(context.Background(), "alice", []byte{6})
	require.Error(t, err)
}
