package services

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	failedLoginWindow    = 10 * time.Minute
	failedLoginThreshold = 5
	alertCooldown        = time.Hour
	maxAlerts            = 100
)

var (
	failedLoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sgac_failed_logins_total",
		Help: "Token requests rejected for bad credentials",
	})
	securityAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sgac_security_alerts_total",
		Help: "Repeated failed login alerts raised",
	})
)

// SecurityEventMonitor watches failed token requests per client IP
type SecurityEventMonitor struct {
	mu           sync.Mutex
	failedLogins map[string][]time.Time
	alertedIPs   map[string]time.Time
	alerts       []SecurityAlert
}

// SecurityAlert is raised when one IP keeps failing to log in
type SecurityAlert struct {
	Timestamp time.Time
	IP        string
	Username  string
	Attempts  int
}

// Monitor is nil until InitSecurityMonitor runs; a nil monitor ignores events
var Monitor *SecurityEventMonitor

func NewSecurityEventMonitor() *SecurityEventMonitor {
	return &SecurityEventMonitor{
		failedLogins: make(map[string][]time.Time),
		alertedIPs:   make(map[string]time.Time),
	}
}

// InitSecurityMonitor installs the global monitor
func InitSecurityMonitor() {
	Monitor = NewSecurityEventMonitor()
}

// TrackFailedLogin records a rejected login and alerts once the IP reaches the threshold inside the window
func (m *SecurityEventMonitor) TrackFailedLogin(ip, username string) {
	failedLoginsTotal.Inc()
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	attempts := recentAttempts(append(m.failedLogins[ip], now), now)
	m.failedLogins[ip] = attempts

	if len(attempts) >= failedLoginThreshold {
		m.alertLocked(ip, username, len(attempts), now)
	}
}

func recentAttempts(attempts []time.Time, now time.Time) []time.Time {
	windowStart := now.Add(-failedLoginWindow)
	kept := attempts[:0]
	for _, t := range attempts {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}
	return kept
}

func (m *SecurityEventMonitor) alertLocked(ip, username string, attempts int, now time.Time) {
	if last, ok := m.alertedIPs[ip]; ok && now.Sub(last) < alertCooldown {
		return
	}
	m.alertedIPs[ip] = now

	alert := SecurityAlert{Timestamp: now, IP: ip, Username: username, Attempts: attempts}
	m.alerts = append([]SecurityAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[:maxAlerts]
	}

	securityAlertsTotal.Inc()
	zap.L().Warn("[SECURITY] Repeated failed logins",
		zap.String("ip", ip),
		zap.String("username", username),
		zap.Int("attempts", attempts),
	)
}

// RecentAlerts returns the alerts, newest first
func (m *SecurityEventMonitor) RecentAlerts() []SecurityAlert {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	alerts := make([]SecurityAlert, len(m.alerts))
	copy(alerts, m.alerts)
	return alerts
}

// Prune forgets attempts outside the window and cooldowns that have passed
func (m *SecurityEventMonitor) Prune(now time.Time) int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for ip, attempts := range m.failedLogins {
		if kept := recentAttempts(attempts, now); len(kept) > 0 {
			m.failedLogins[ip] = kept
		} else {
			delete(m.failedLogins, ip)
			removed++
		}
	}
	for ip, last := range m.alertedIPs {
		if now.Sub(last) >= alertCooldown {
			delete(m.alertedIPs, ip)
		}
	}
	return removed
}
