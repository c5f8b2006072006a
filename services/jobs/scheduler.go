package jobs

import (
	"context"
	"time"

	"sgac_app_go/services"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// PurgeSchedule runs the revoked token purge at minute zero of every hour
const PurgeSchedule = "0 * * * *"

// StartScheduler registers the periodic maintenance jobs and starts the cron runner.
// The returned cron must be stopped on shutdown.
func StartScheduler(store services.RevocationStore) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(PurgeSchedule, func() {
		PurgeRevokedTokens(context.Background(), store)
	})
	if err != nil {
		return nil, err
	}

	_, err = c.AddFunc(PurgeSchedule, func() {
		PruneSecurityMonitor(services.Monitor, time.Now())
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	zap.L().Info("[CRON] Scheduler started", zap.String("purge_schedule", PurgeSchedule))
	return c, nil
}

// PurgeRevokedTokens drops revocation entries whose token has already expired
func PurgeRevokedTokens(ctx context.Context, store services.RevocationStore) {
	if store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	removed, err := store.PurgeExpired(ctx)
	if err != nil {
		zap.L().Error("[JOB] Failed to purge revoked tokens", zap.Error(err))
		return
	}
	if removed > 0 {
		zap.L().Info("[JOB] Purged expired revoked tokens", zap.Int64("removed", removed))
	}
}

// PruneSecurityMonitor drops failed login history that no longer counts toward an alert
func PruneSecurityMonitor(m *services.SecurityEventMonitor, now time.Time) {
	if removed := m.Prune(now); removed > 0 {
		zap.L().Debug("[JOB] Pruned failed login history", zap.Int("ips", removed))
	}
}
