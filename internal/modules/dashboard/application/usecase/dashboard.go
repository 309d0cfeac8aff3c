package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	catalogport "campusAdmin/internal/modules/catalog/application/port"
	"campusAdmin/internal/modules/dashboard/domain"
)

// ErrUnknownChart is returned for chart keys outside the endpoint table.
var ErrUnknownChart = errors.New("unknown chart")

// chartEndpoints declares how each chart key resolves to a backend path.
var chartEndpoints = map[string]string{
	domain.ChartEnrollmentTrends: "dashboard/charts/enrollment-trends",
	domain.ChartClassesByDept:    "dashboard/charts/classes-by-dept",
	domain.ChartUserDistribution: "dashboard/charts/user-distribution",
	domain.ChartCapacityStatus:   "dashboard/charts/capacity-status",
}

// Service wraps the data provider's custom escape hatch with typed accessors
// for the non-CRUD dashboard endpoints.
type Service struct {
	provider catalogport.DataProvider
}

func NewService(provider catalogport.DataProvider) *Service {
	return &Service{provider: provider}
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	if err := s.fetch(ctx, "dashboard/stats", &stats); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}

func (s *Service) EnrollmentTrends(ctx context.Context) ([]domain.TrendPoint, error) {
	var points []domain.TrendPoint
	err := s.fetchChart(ctx, domain.ChartEnrollmentTrends, &points)
	return points, err
}

func (s *Service) ClassesByDepartment(ctx context.Context) ([]domain.DepartmentCount, error) {
	var counts []domain.DepartmentCount
	err := s.fetchChart(ctx, domain.ChartClassesByDept, &counts)
	return counts, err
}

func (s *Service) UserDistribution(ctx context.Context) ([]domain.RoleCount, error) {
	var counts []domain.RoleCount
	err := s.fetchChart(ctx, domain.ChartUserDistribution, &counts)
	return counts, err
}

func (s *Service) CapacityStatus(ctx context.Context) ([]domain.CapacityPoint, error) {
	var points []domain.CapacityPoint
	err := s.fetchChart(ctx, domain.ChartCapacityStatus, &points)
	return points, err
}

func (s *Service) fetchChart(ctx context.Context, chart string, dst any) error {
	endpoint, ok := chartEndpoints[chart]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChart, chart)
	}
	return s.fetch(ctx, endpoint, dst)
}

func (s *Service) fetch(ctx context.Context, endpoint string, dst any) error {
	payload, err := s.provider.Custom(ctx, catalogport.CustomRequest{URL: endpoint})
	if err != nil {
		return err
	}

	// The dashboard endpoints wrap their payload in the usual data envelope.
	if wrapped, ok := payload.(map[string]any); ok {
		if inner, present := wrapped["data"]; present {
			payload = inner
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
