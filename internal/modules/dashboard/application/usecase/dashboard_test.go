package usecase

import (
	"context"
	"errors"
	"testing"

	catalogport "campusAdmin/internal/modules/catalog/application/port"
)

type fakeProvider struct {
	catalogport.DataProvider

	lastURL string
	payload any
	err     error
}

func (f *fakeProvider) Custom(ctx context.Context, req catalogport.CustomRequest) (any, error) {
	f.lastURL = req.URL
	return f.payload, f.err
}

func TestStats_UnwrapsDataEnvelope(t *testing.T) {
	provider := &fakeProvider{payload: map[string]any{
		"data": map[string]any{"users": float64(12), "classes": float64(3), "enrollments": float64(40), "subjects": float64(7)},
	}}
	service := NewService(provider)

	stats, err := service.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lastURL != "dashboard/stats" {
		t.Fatalf("unexpected endpoint: %s", provider.lastURL)
	}
	if stats.Users != 12 || stats.Subjects != 7 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestEnrollmentTrends_ResolvesChartEndpoint(t *testing.T) {
	provider := &fakeProvider{payload: map[string]any{
		"data": []any{map[string]any{"month": "2025-05", "enrollments": float64(18)}},
	}}
	service := NewService(provider)

	points, err := service.EnrollmentTrends(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lastURL != "dashboard/charts/enrollment-trends" {
		t.Fatalf("unexpected endpoint: %s", provider.lastURL)
	}
	if len(points) != 1 || points[0].Enrollments != 18 {
		t.Fatalf("unexpected points: %+v", points)
	}
}

func TestFetchChart_UnknownKey(t *testing.T) {
	service := NewService(&fakeProvider{})

	err := service.fetchChart(context.Background(), "made-up", &struct{}{})
	if !errors.Is(err, ErrUnknownChart) {
		t.Fatalf("expected ErrUnknownChart, got %v", err)
	}
}

func TestStats_ProviderErrorPropagates(t *testing.T) {
	cause := errors.New("backend down")
	service := NewService(&fakeProvider{err: cause})

	_, err := service.Stats(context.Background())
	if !errors.Is(err, cause) {
		t.Fatalf("expected provider error, got %v", err)
	}
}
