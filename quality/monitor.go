package quality

// MetricsMonitor reports how long an inspection pass took.
type MetricsMonitor interface {
	Duration(string, int)
}

type dummyMetricsMonitor struct{}

func (dummyMetricsMonitor) Duration(string, int) {}
