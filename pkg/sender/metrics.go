package sender

// Point-in-time copy of the delivery counters
type Stats struct {
	Delivered  uint64
	Filtered   uint64
	SinkErrors uint64
	BytesSent  uint64
}

func (metrics *MetricStorage) Snapshot() (stats Stats) {
	stats = Stats{
		Delivered:  metrics.Delivered.Load(),
		Filtered:   metrics.Filtered.Load(),
		SinkErrors: metrics.SinkErrors.Load(),
		BytesSent:  metrics.BytesSent.Load(),
	}
	return
}
