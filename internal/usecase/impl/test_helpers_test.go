package impl

import (
	"io"
	"log/slog"
	"time"

	"geoalert/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Notification: &config.NotificationConfig{
			Provider:              "log",
			StageTimeout:          time.Second,
			DispatchTimeout:       time.Second,
			MaxConcurrentDispatch: 2,
		},
	}
}
