package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShareLinkIsUsable(t *testing.T) {
	now := time.Now()

	t.Run(`active without expiration check`, func(t *testing.T) {
		link := ShareLink{Ativo: true}
		require.True(t, link.IsUsable(now))
	})

	t.Run(`inactive link check`, func(t *testing.T) {
		link := ShareLink{Ativo: false}
		require.False(t, link.IsUsable(now))
	})

	t.Run(`expired link check`, func(t *testing.T) {
		expired := now.Add(-time.Hour)
		link := ShareLink{Ativo: true, ExpiresAt: &expired}
		require.False(t, link.IsUsable(now))
	})

	t.Run(`future expiration check`, func(t *testing.T) {
		future := now.Add(time.Hour)
		link := ShareLink{Ativo: true, ExpiresAt: &future}
		require.True(t, link.IsUsable(now))
	})
}

func TestAgendaTokenIsExpired(t *testing.T) {
	now := time.Now()

	t.Run(`valid token check`, func(t *testing.T) {
		token := AgendaToken{ExpiresAt: now.Add(time.Minute)}
		require.False(t, token.IsExpired(now))
	})

	t.Run(`expired token check`, func(t *testing.T) {
		token := AgendaToken{ExpiresAt: now.Add(-time.Minute)}
		require.True(t, token.IsExpired(now))
	})

	t.Run(`zero expiration treated as valid check`, func(t *testing.T) {
		token := AgendaToken{}
		require.False(t, token.IsExpired(now))
	})
}
