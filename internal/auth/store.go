package auth

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Keeper persists a token pair across process restarts.
type Keeper interface {
	// Load returns the persisted pair, or nil if none is stored.
	Load() (*TokenPair, error)
	Save(pair TokenPair) error
	Clear() error
}

// Store is the single source of truth for session credentials and their
// validity. It is constructed once at startup and passed to the API client;
// there is no package-level instance.
//
// All operations are total: persistence failures are logged and the
// in-memory state stays authoritative for the running process.
type Store struct {
	mu     sync.RWMutex
	pair   *TokenPair
	keeper Keeper
}

// NewStore creates a Store backed by the given keeper and loads any
// previously persisted credentials. A nil keeper gives a purely in-memory
// store. A partial persisted pair is discarded rather than trusted.
func NewStore(keeper Keeper) *Store {
	s := &Store{keeper: keeper}
	if keeper == nil {
		return s
	}

	pair, err := keeper.Load()
	if err != nil {
		log.Warn().Err(err).Msg("could not load persisted credentials")
		return s
	}
	if pair != nil {
		if pair.Complete() {
			s.pair = pair
		} else {
			log.Warn().Msg("persisted credentials incomplete, discarding")
			if err := keeper.Clear(); err != nil {
				log.Warn().Err(err).Msg("could not clear incomplete credentials")
			}
		}
	}
	return s
}

// SetTokens replaces the stored pair and writes it through to the keeper.
// Token contents are opaque and not validated.
func (s *Store) SetTokens(pair TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pair = &pair
	if s.keeper != nil {
		if err := s.keeper.Save(pair); err != nil {
			log.Warn().Err(err).Msg("could not persist credentials")
		}
	}
}

// AccessToken returns the stored access token, if any.
func (s *Store) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pair == nil || s.pair.AccessToken == "" {
		return "", false
	}
	return s.pair.AccessToken, true
}

// RefreshToken returns the stored refresh token, if any.
func (s *Store) RefreshToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pair == nil || s.pair.RefreshToken == "" {
		return "", false
	}
	return s.pair.RefreshToken, true
}

// IsExpired returns true when no expiry is recorded or the recorded expiry
// has passed.
func (s *Store) IsExpired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pair == nil {
		return true
	}
	return s.pair.IsExpired()
}

// WillExpireWithin reports whether the recorded expiry falls inside the
// next d. No recorded expiry counts as already expiring.
func (s *Store) WillExpireWithin(d time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pair == nil || s.pair.ExpiresAt.IsZero() {
		return true
	}
	return !time.Now().Add(d).Before(s.pair.ExpiresAt)
}

// IsAuthenticated returns true iff an access token is present and not
// expired.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pair == nil || s.pair.AccessToken == "" {
		return false
	}
	return !s.pair.IsExpired()
}

// Clear removes the pair from memory and from the keeper. Calling it on an
// already cleared store is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pair = nil
	if s.keeper != nil {
		if err := s.keeper.Clear(); err != nil {
			log.Warn().Err(err).Msg("could not clear persisted credentials")
		}
	}
}
