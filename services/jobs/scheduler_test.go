package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"sgac_app_go/services"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	purged int
	err    error
}

func (f *fakeStore) Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error {
	return nil
}

func (f *fakeStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}

func (f *fakeStore) PurgeExpired(ctx context.Context) (int64, error) {
	f.purged++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("purge without deadline")
	}
	return 3, f.err
}

func TestPurgeRevokedTokens(t *testing.T) {
	store := &fakeStore{}
	PurgeRevokedTokens(context.Background(), store)
	assert.Equal(t, 1, store.purged)

	store.err = errors.New("db down")
	PurgeRevokedTokens(context.Background(), store)
	assert.Equal(t, 2, store.purged)

	// A nil store is ignored
	PurgeRevokedTokens(context.Background(), nil)
}

func TestStartScheduler(t *testing.T) {
	c, err := StartScheduler(&fakeStore{})
	require.NoError(t, err)
	defer c.Stop()

	entries := c.Entries()
	require.Len(t, entries, 2)

	schedule, err := cron.ParseStandard(PurgeSchedule)
	require.NoError(t, err)
	from := time.Date(2024, 5, 1, 10, 15, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 5, 1, 11, 0, 0, 0, time.Local), schedule.Next(from))
}

func TestPruneSecurityMonitor(t *testing.T) {
	m := services.NewSecurityEventMonitor()
	m.TrackFailedLogin("10.1.1.1", "admin")

	PruneSecurityMonitor(m, time.Now().Add(time.Hour))
	assert.Equal(t, 0, m.Prune(time.Now().Add(time.Hour)))

	// nil monitor is a no-op
	PruneSecurityMonitor(nil, time.Now())
}
