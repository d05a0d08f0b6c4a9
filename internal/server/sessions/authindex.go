package sessions

import (
	"fmt"
	"sync"

	"github.com/reymom/zkp-chaum-pedersen/internal/common"
)

// AuthIndex maps outstanding challenge tokens (auth_id) to user names.
// Entries are not removed after use; their lifetime is the process
// lifetime. Guarded by its own whole-map mutex, always acquired after the
// Registry lock has been released.
type AuthIndex struct {
	mu      sync.Mutex
	byToken map[string]string
}

func NewAuthIndex() *AuthIndex {
	return &AuthIndex{byToken: make(map[string]string)}
}

// PutIfAbsent records token -> name unless the token is already present.
// Returns false on collision so the caller can mint a fresh token.
func (i *AuthIndex) PutIfAbsent(token, name string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.byToken[token]; ok {
		return false
	}
	i.byToken[token] = name
	return true
}

// Resolve returns the user name a token was issued for.
func (i *AuthIndex) Resolve(token string) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	name, ok := i.byToken[token]
	if !ok {
		return "", fmt.Errorf("auth_id %q: %w", token, common.ErrorNotFound)
	}
	return name, nil
}
