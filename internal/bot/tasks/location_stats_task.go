package tasks

import "context"

// newLocationStatsTask reports how many chats have shared a location.
func newLocationStatsTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", TaskLocationStats)

	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		count := deps.Store.Len()
		deps.Metrics.SetKnownLocations(count)
		log.InfoContext(ctx, "Known locations", "count", count)
		return nil
	}
}
