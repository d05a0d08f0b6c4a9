package services

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reymom/zkp-chaum-pedersen/internal/common"
	"github.com/reymom/zkp-chaum-pedersen/internal/server/auth"
	"github.com/reymom/zkp-chaum-pedersen/internal/server/config"
	"github.com/reymom/zkp-chaum-pedersen/internal/server/sessions"
	"github.com/reymom/zkp-chaum-pedersen/internal/zkp"
)

// stubSource returns scripted challenges and tokens, so protocol runs are
// reproducible against the toy-group vectors.
type stubSource struct {
	ints   []int64
	tokens []string
	i, j   int
}

func (s *stubSource) IntBelow(bound *big.Int) (*big.Int, error) {
	v := s.ints[s.i%len(s.ints)]
	s.i++
	return big.NewInt(v), nil
}

func (s *stubSource) Token(n int) (string, error) {
	v := s.tokens[s.j%len(s.tokens)]
	s.j++
	return v, nil
}

func toyGroup() *zkp.Group {
	return &zkp.Group{
		P:     big.NewInt(23),
		Q:     big.NewInt(11),
		Alpha: big.NewInt(4),
		Beta:  big.NewInt(9),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:               "test-secret",
		SessionValidityDuration: time.Minute,
		AuthIDLength:            12,
	}
}

func newService(src zkp.Source) *AuthService {
	return NewAuthService(toyGroup(), src, sessions.NewRegistry(), sessions.NewAuthIndex(), testConfig())
}

// registerAlice registers the toy-group commitments for x=6: y1=2, y2=3.
func registerAlice(t *testing.T, s *AuthService) {
	t.Helper()
	err := s.Register(context.Background(), "alice", big.NewInt(2).Bytes(), big.NewInt(3).Bytes())
	require.NoError(t, err)
}

func TestHappyPath_RegisterChallengeVerify(t *testing.T) {
	ctx := context.Background()
	src := &stubSource{ints: []int64{4}, tokens: []string{"token-1"}}
	s := newService(src)

	registerAlice(t, s)

	// prover side: x=6, k=7 => r1=8, r2=4
	authID, c, err := s.CreateChallenge(ctx, "alice", big.NewInt(8).Bytes(), big.NewInt(4).Bytes())
	require.NoError(t, err)
	assert.Equal(t, "token-1", authID)
	require.Equal(t, big.NewInt(4), c)

	// s = k - c*x mod q = 7 - 24 mod 11 = 5
	sessionID, err := s.VerifyAuth(ctx, authID, big.NewInt(5).Bytes())
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	// the session token must be a JWT for "alice" signed with our key
	user, err := auth.GetUserFromToken(sessionID, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "alice", user)
}

func TestCreateChallenge_UnknownUser(t *testing.T) {
	src := &stubSource{ints: []int64{4}, tokens: []string{"token-1"}}
	s := newService(src)

	_, _, err := s.CreateChallenge(context.Background(), "ghost", big.NewInt(8).Bytes(), big.NewInt(4).Bytes())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, err.Error(), "ghost")
}

func TestVerifyAuth_UnknownAuthID(t *testing.T) {
	src := &stubSource{ints: []int64{4}, tokens: []string{"token-1"}}
	s := newService(src)

	_, err := s.VerifyAuth(context.Background(), "bogus", big.NewInt(5).Bytes())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, err.Error(), "bogus")
}

func TestVerifyAuth_TamperedAnswer(t *testing.T) {
	ctx := context.Background()
	src := &stubSource{ints: []int64{4}, tokens: []string{"token-1"}}
	s := newService(src)

	registerAlice(t, s)

	authID, _, err := s.CreateChallenge(ctx, "alice", big.NewInt(8).Bytes(), big.NewInt(4).Bytes())
	require.NoError(t, err)

	_, err = s.VerifyAuth(ctx, authID, big.NewInt(6).Bytes())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorVerificationFailed)
	assert.Contains(t, err.Error(), authID)
}

// A second challenge replaces the first; an answer computed against the
// stale challenge must not verify, while one computed against the latest
// must.
func TestVerifyAuth_StaleChallengeIsInvalidated(t *testing.T) {
	ctx := context.Background()
	src := &stubSource{ints: []int64{4, 9}, tokens: []string{"token-1", "token-2"}}
	s := newService(src)

	registerAlice(t, s)

	// both attempts reuse k=7, so r1=8, r2=4
	first, c1, err := s.CreateChallenge(ctx, "alice", big.NewInt(8).Bytes(), big.NewInt(4).Bytes())
	require.NoError(t, err)
	require.Equal(t, big.NewInt(4), c1)

	second, c2, err := s.CreateChallenge(ctx, "alice", big.NewInt(8).Bytes(), big.NewInt(4).Bytes())
	require.NoError(t, err)
	require.Equal(t, big.NewInt(9), c2)

	// answer for the stale c=4 is s=5; stored challenge is now c=9
	_, err = s.VerifyAuth(ctx, first, big.NewInt(5).Bytes())
	assert.ErrorIs(t, err, common.ErrorVerificationFailed)

	// answer for the current c=9 is s = 7 - 54 mod 11 = 8
	sessionID, err := s.VerifyAuth(ctx, second, big.NewInt(8).Bytes())
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
}

func TestVerifyAuth_ReRegistrationClearsChallenge(t *testing.T) {
	ctx := context.Background()
	src := &stubSource{ints: []int64{4}, tokens: []string{"token-1"}}
	s := newService(src)

	registerAlice(t, s)

	authID, _, err := s.CreateChallenge(ctx, "alice", big.NewInt(8).Bytes(), big.NewInt(4).Bytes())
	require.NoError(t, err)

	// re-register the same identity: the record is replaced wholesale
	registerAlice(t, s)

	_, err = s.VerifyAuth(ctx, authID, big.NewInt(5).Bytes())
	assert.ErrorIs(t, err, common.ErrorVerificationFailed)
}

func TestCreateChallenge_RetriesOnTokenCollision(t *testing.T) {
	ctx := context.Background()
	src := &stubSource{ints: []int64{4, 9}, tokens: []string{"dup", "dup", "fresh"}}
	s := newService(src)

	registerAlice(t, s)

	first, _, err := s.CreateChallenge(ctx, "alice", big.NewInt(8).Bytes(), big.NewInt(4).Bytes())
	require.NoError(t, err)
	assert.Equal(t, "dup", first)

	// second mint collides with "dup" and must fall through to "fresh"
	second, _, err := s.CreateChallenge(ctx, "alice", big.NewInt(8).Bytes(), big.NewInt(4).Bytes())
	require.NoError(t, err)
	assert.Equal(t, "fresh", second)
}
