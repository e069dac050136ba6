package receiver

// Point-in-time copy of the polling counters
type Stats struct {
	Received         uint64
	Accepted         uint64
	Filtered         uint64
	InvalidDatagrams uint64
}

func (metrics *MetricStorage) Snapshot() (stats Stats) {
	stats = Stats{
		Received:         metrics.Received.Load(),
		Accepted:         metrics.Accepted.Load(),
		Filtered:         metrics.Filtered.Load(),
		InvalidDatagrams: metrics.InvalidDatagrams.Load(),
	}
	return
}
