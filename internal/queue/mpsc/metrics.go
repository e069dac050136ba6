package mpsc

// Returns a point-in-time copy of the queue counters
func (metrics *MetricStorage) Snapshot() (stats Stats) {
	stats = Stats{
		Enqueued:     metrics.Enqueued.Load(),
		Dequeued:     metrics.Dequeued.Load(),
		FailedPushes: metrics.FailedPushes.Load(),
		Depth:        metrics.Depth.Load(),
		HighWater:    metrics.HighWater.Load(),
	}
	return
}
