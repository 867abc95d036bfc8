package quality

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianhq/meridian/asset"
)

// Service runs inspections on demand. Every inspection covers the full
// collection, never a filtered subset.
type Service struct {
	repository     asset.Repository
	metricsMonitor MetricsMonitor
}

// NewService returns a Service reporting inspection durations to
// metricsMonitor. A nil monitor disables reporting.
func NewService(repository asset.Repository, metricsMonitor MetricsMonitor) *Service {
	if metricsMonitor == nil {
		metricsMonitor = dummyMetricsMonitor{}
	}

	return &Service{
		repository:     repository,
		metricsMonitor: metricsMonitor,
	}
}

// ListIssues inspects every stored asset and returns the findings.
func (srv *Service) ListIssues(ctx context.Context) ([]Issue, error) {
	assets, err := srv.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing assets for inspection: %w", err)
	}

	startTime := time.Now()
	issues := Inspect(assets)
	srv.metricsMonitor.Duration("qualityInspectionTime", int(time.Since(startTime)/time.Millisecond))

	return issues, nil
}
