package bot

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edgard/airbot/internal/bot/tasks"
	"github.com/edgard/airbot/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func noopTask(context.Context) error { return nil }

func TestSchedulerSchedulesEnabledTasks(t *testing.T) {
	t.Parallel()

	cfg := &config.SchedulerConfig{Tasks: map[string]config.TaskConfig{
		"location_stats": {Enabled: true, Schedule: "0 */15 * * * *"},
		"disabled":       {Enabled: false, Schedule: "* * * * *"},
		"unregistered":   {Enabled: true, Schedule: "* * * * *"},
		"bad_schedule":   {Enabled: true, Schedule: "not a cron"},
	}}
	taskMap := map[string]tasks.ScheduledTaskFunc{
		"location_stats": noopTask,
		"disabled":       noopTask,
		"bad_schedule":   noopTask,
	}

	s, err := NewScheduler(discardLogger(), cfg, taskMap)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Stop() })

	require.Equal(t, []string{"location_stats"}, s.Jobs())
}

func TestSchedulerStartTwice(t *testing.T) {
	t.Parallel()

	s, err := NewScheduler(discardLogger(), nil, nil)
	require.NoError(t, err)
	require.NoError(t, s.Start())
	require.Error(t, s.Start())
	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop(), "stopping a stopped scheduler is a no-op")
}
