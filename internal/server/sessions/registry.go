// Package sessions holds the server's in-memory protocol state: the user
// registry (commitments plus the latest challenge per identity) and the
// auth index (outstanding challenge token to identity). All state is
// process-lifetime only; nothing survives a restart.
package sessions

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/reymom/zkp-chaum-pedersen/internal/common"
)

// UserRecord is the per-identity protocol state. Y1/Y2 are set at
// registration; R1/R2/C are the ephemeral fields of the most recent
// challenge and are overwritten by every new challenge, so only the
// latest one can be verified. The secret exponent behind Y1/Y2 is never
// present on the server.
type UserRecord struct {
	Name string
	Y1   *big.Int
	Y2   *big.Int
	R1   *big.Int
	R2   *big.Int
	C    *big.Int
}

// Registry is a registry of UserRecords keyed by user name, guarded by a
// single whole-map mutex. The lock covers only the map read or mutate
// step, never randomness or group arithmetic.
type Registry struct {
	mu    sync.Mutex
	users map[string]*UserRecord
}

func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*UserRecord)}
}

// Save inserts or overwrites the record for rec.Name. Registration is
// unconditional; see the protocol note on zkp_auth.proto.
func (r *Registry) Save(rec *UserRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[rec.Name] = rec
}

// Get returns a copy of the record for name, so the caller can read it
// without holding the registry lock.
func (r *Registry) Get(name string) (UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.users[name]
	if !ok {
		return UserRecord{}, fmt.Errorf("user %q: %w", name, common.ErrorNotFound)
	}
	return *rec, nil
}

// AttachChallenge stores the ephemeral (r1, r2, c) trio on the record for
// name, replacing any in-flight challenge for that identity.
func (r *Registry) AttachChallenge(name string, r1, r2, c *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.users[name]
	if !ok {
		return fmt.Errorf("user %q: %w", name, common.ErrorNotFound)
	}
	rec.R1 = r1
	rec.R2 = r2
	rec.C = c
	return nil
}
