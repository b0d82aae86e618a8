package api

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// KeepSessionAlive periodically refreshes the token pair before it expires,
// so a long-running process never hits a 401 on its regular calls. It
// returns when ctx is cancelled or when the session has been torn down
// because a refresh failed.
func (c *Client) KeepSessionAlive(ctx context.Context, checkInterval time.Duration) error {
	check := func() error {
		if _, ok := c.store.RefreshToken(); !ok {
			log.Info().Msg("no session to keep alive")
			return nil
		}
		// Refresh when the access token is expired or will expire before
		// the next check.
		if !c.store.WillExpireWithin(2 * checkInterval) {
			return nil
		}
		if err := c.RefreshSession(ctx); err != nil {
			log.Warn().Err(err).Msg("keep-alive refresh failed")
			return err
		}
		return nil
	}

	if err := check(); err != nil {
		return err
	}

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("stopping session keep-alive")
			return ctx.Err()
		case <-ticker.C:
			if err := check(); err != nil {
				return err
			}
		}
	}
}
