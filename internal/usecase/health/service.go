// Package health reports service liveness and a census of the loaded
// catalog.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates the service is operational.
	Healthy Status = "ok"
	// Unhealthy indicates the catalog never became available.
	Unhealthy Status = "error"
)

// CatalogCensus exposes the catalog counters the health report includes.
type CatalogCensus interface {
	Len() int
	TagCount() int
}

// Report is the health check outcome.
type Report struct {
	Status   Status
	Episodes int
	Tags     int
}

// Service produces health reports.
type Service struct {
	catalog CatalogCensus
}

// New creates a Service.
func New(catalog CatalogCensus) *Service {
	return &Service{catalog: catalog}
}

// Check reports the current status. The catalog is immutable once loaded,
// so an empty census can only mean startup wiring failed.
func (s *Service) Check(_ context.Context) Report {
	if s.catalog == nil || s.catalog.Len() == 0 {
		return Report{Status: Unhealthy}
	}
	return Report{
		Status:   Healthy,
		Episodes: s.catalog.Len(),
		Tags:     s.catalog.TagCount(),
	}
}
