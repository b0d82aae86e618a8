package auth

import "time"

// TokenPair holds the credentials for an authenticated admin session.
type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Grant is the token payload returned by the login and refresh endpoints.
type Grant struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// PairFromGrant converts a wire grant into a TokenPair with an absolute
// expiry computed from expires_in.
func PairFromGrant(g Grant, now time.Time) TokenPair {
	return TokenPair{
		AccessToken:  g.AccessToken,
		RefreshToken: g.RefreshToken,
		ExpiresAt:    now.Add(time.Duration(g.ExpiresIn) * time.Second),
	}
}

// IsExpired returns true if the pair has no recorded expiry or the expiry
// has passed. Missing data counts as expired.
func (p TokenPair) IsExpired() bool {
	if p.ExpiresAt.IsZero() {
		return true
	}
	return !time.Now().Before(p.ExpiresAt)
}

// Complete reports whether all three fields are set. A pair that is not
// complete must be treated the same as no pair at all.
func (p TokenPair) Complete() bool {
	return p.AccessToken != "" && p.RefreshToken != "" && !p.ExpiresAt.IsZero()
}
