package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityMonitor(t *testing.T) {
	m := NewSecurityEventMonitor()
	ip := "10.0.0.7"

	t.Run("alert after threshold", func(t *testing.T) {
		before := testutil.ToFloat64(failedLoginsTotal)
		for i := 0; i < failedLoginThreshold-1; i++ {
			m.TrackFailedLogin(ip, "admin")
		}
		assert.Empty(t, m.RecentAlerts())

		m.TrackFailedLogin(ip, "admin")
		alerts := m.RecentAlerts()
		require.Len(t, alerts, 1)
		assert.Equal(t, ip, alerts[0].IP)
		assert.Equal(t, "admin", alerts[0].Username)
		assert.Equal(t, failedLoginThreshold, alerts[0].Attempts)
		assert.Equal(t, before+failedLoginThreshold, testutil.ToFloat64(failedLoginsTotal))
	})

	t.Run("cooldown", func(t *testing.T) {
		for i := 0; i < failedLoginThreshold; i++ {
			m.TrackFailedLogin(ip, "admin")
		}
		assert.Len(t, m.RecentAlerts(), 1)
	})

	t.Run("other IPs are independent", func(t *testing.T) {
		m.TrackFailedLogin("10.0.0.8", "clerk")
		assert.Len(t, m.RecentAlerts(), 1)
	})

	t.Run("prune", func(t *testing.T) {
		assert.Equal(t, 0, m.Prune(time.Now()))
		assert.Equal(t, 2, m.Prune(time.Now().Add(failedLoginWindow+time.Second)))

		// Cooldown has expired too, so the next burst alerts again
		m.mu.Lock()
		m.alertedIPs[ip] = time.Now().Add(-alertCooldown - time.Second)
		m.mu.Unlock()
		m.Prune(time.Now())
		for i := 0; i < failedLoginThreshold; i++ {
			m.TrackFailedLogin(ip, "admin")
		}
		assert.Len(t, m.RecentAlerts(), 2)
	})
}

func TestNilSecurityMonitor(t *testing.T) {
	var m *SecurityEventMonitor
	m.TrackFailedLogin("10.0.0.9", "x")
	assert.Nil(t, m.RecentAlerts())
	assert.Equal(t, 0, m.Prune(time.Now()))
}
