package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"notification": map[string]any{
			"eventUrlBase":          "",
			"maxConcurrentDispatch": 8,
		},
		"smtp": map[string]any{
			"host": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "NOTIFICATION_EVENTURLBASE", want: "notification.eventUrlBase"},
		{envKey: "NOTIFICATION_MAXCONCURRENTDISPATCH", want: "notification.maxConcurrentDispatch"},
		{envKey: "SMTP_HOST", want: "smtp.host"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyNotificationDefaults(t *testing.T) {
	t.Run("missing section gets defaults", func(t *testing.T) {
		cfg := &Config{}
		applyNotificationDefaults(cfg)

		if assert.NotNil(t, cfg.Notification) {
			assert.Equal(t, defaultStageTimeout, cfg.Notification.StageTimeout)
			assert.Equal(t, defaultDispatchTimeout, cfg.Notification.DispatchTimeout)
			assert.Equal(t, defaultMaxConcurrentDispatch, cfg.Notification.MaxConcurrentDispatch)
		}
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		cfg := &Config{Notification: &NotificationConfig{
			StageTimeout:          time.Second,
			DispatchTimeout:       2 * time.Second,
			MaxConcurrentDispatch: 3,
		}}
		applyNotificationDefaults(cfg)

		assert.Equal(t, time.Second, cfg.Notification.StageTimeout)
		assert.Equal(t, 2*time.Second, cfg.Notification.DispatchTimeout)
		assert.Equal(t, 3, cfg.Notification.MaxConcurrentDispatch)
	})
}
