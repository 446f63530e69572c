package domain_test

import (
	"testing"
	"time"

	"github.com/riddimbasellc-sys/riddimbase-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierForDays(t *testing.T) {
	cases := []struct {
		days int
		want int
	}{
		{1, 1},
		{3, 1},
		{6, 1},
		{7, 2},
		{13, 2},
		{14, 3},
		{30, 3},
		{365, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, domain.TierForDays(c.days), "days=%d", c.days)
	}
}

func TestDurationForTier(t *testing.T) {
	d1, err := domain.DurationForTier(1)
	require.NoError(t, err)
	assert.Equal(t, 3*24*time.Hour, d1)

	d2, err := domain.DurationForTier(2)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, d2)

	d3, err := domain.DurationForTier(3)
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, d3)

	_, err = domain.DurationForTier(0)
	assert.Error(t, err)
	_, err = domain.DurationForTier(4)
	assert.Error(t, err)
}

func TestBoostPriorityScore(t *testing.T) {
	assert.Equal(t, 100, domain.BoostPriorityScore(1))
	assert.Equal(t, 200, domain.BoostPriorityScore(2))
	assert.Equal(t, 300, domain.BoostPriorityScore(3))
}

func TestBoostActiveAt(t *testing.T) {
	now := time.Now().UTC()
	b := domain.Boost{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, b.ActiveAt(now))
	assert.False(t, b.ActiveAt(now.Add(time.Hour)))     // expiry boundary is exclusive
	assert.False(t, b.ActiveAt(now.Add(2*time.Hour)))
}
