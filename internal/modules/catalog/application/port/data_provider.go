package port

import (
	"context"

	"campusAdmin/internal/modules/catalog/domain"
)

// CustomRequest is the escape hatch for non-CRUD endpoints (dashboard
// statistics, chart data). Method, payload and headers are forwarded
// verbatim and the response body is returned unwrapped.
type CustomRequest struct {
	URL     string
	Method  string
	Payload any
	Query   map[string]string
	Headers map[string]string
}

// DataProvider translates abstract CRUD/list operations into REST calls
// against the configured backend.
type DataProvider interface {
	List(ctx context.Context, resource string, query domain.ListQuery) (domain.ListResult, error)
	GetOne(ctx context.Context, resource, id string) (domain.Record, error)
	Create(ctx context.Context, resource string, values domain.Record) (domain.Record, error)
	Update(ctx context.Context, resource, id string, values domain.Record) (domain.Record, error)
	DeleteOne(ctx context.Context, resource, id string) (domain.Record, error)
	Custom(ctx context.Context, req CustomRequest) (any, error)
	APIURL() string
}
