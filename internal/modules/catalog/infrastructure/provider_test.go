package infrastructure

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campusAdmin/internal/modules/catalog/application/port"
	"campusAdmin/internal/modules/catalog/domain"
	"campusAdmin/internal/shared/httperror"
	"campusAdmin/internal/shared/rest"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*RESTProvider, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewRESTProvider(rest.New(server.URL, time.Second, nil)), server
}

func TestList_NormalizesEnvelopeWithPagination(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subjects" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "1" {
			t.Fatalf("expected page=1, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1},{"id":2}],"pagination":{"total":41}}`))
	})

	result, err := provider.List(context.Background(), "subjects", domain.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Data) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Data))
	}
	if result.Total != 41 {
		t.Fatalf("expected total from pagination, got %d", result.Total)
	}
}

func TestList_TotalDefaultsToDataLength(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":1},{"id":2}]}`))
	})

	result, err := provider.List(context.Background(), "departments", domain.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected total=2, got %d", result.Total)
	}
}

func TestList_MissingDataYieldsEmptySlice(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	result, err := provider.List(context.Background(), "classes", domain.ListQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Data == nil || len(result.Data) != 0 {
		t.Fatalf("expected empty data slice, got %#v", result.Data)
	}
	if result.Total != 0 {
		t.Fatalf("expected total=0, got %d", result.Total)
	}
}

func TestList_TransportErrorCarriesMessageAndStatus(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"admin role required"}`))
	})

	_, err := provider.List(context.Background(), "users", domain.ListQuery{})
	if err == nil {
		t.Fatal("expected error")
	}
	var httpErr *httperror.Error
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected canonical error, got %T", err)
	}
	if httpErr.Message != "admin role required" {
		t.Fatalf("unexpected message: %s", httpErr.Message)
	}
	if httpErr.StatusCode != http.StatusForbidden {
		t.Fatalf("unexpected status: %d", httpErr.StatusCode)
	}
}

func TestGetOne_MissingDataOn200IsNotFound(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := provider.GetOne(context.Background(), "subjects", "9")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreate_ReturnsEnvelopeData(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected content type: %s", got)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":12,"name":"Physics"}}`))
	})

	record, err := provider.Create(context.Background(), "subjects", domain.Record{"name": "Physics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record["name"] != "Physics" {
		t.Fatalf("unexpected record: %#v", record)
	}
}

func TestUpdate_MissingDataIsNotFound(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	_, err := provider.Update(context.Background(), "departments", "3", domain.Record{"name": "Updated"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteOne_MissingDataIsSoftSuccess(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	record, err := provider.DeleteOne(context.Background(), "classes", "5")
	if err != nil {
		t.Fatalf("delete without data must succeed, got %v", err)
	}
	if record == nil {
		t.Fatal("expected zero record, got nil")
	}
}

func TestCustom_ReturnsRawBodyAndAppendsQuery(t *testing.T) {
	provider, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/stats" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("range"); got != "30d" {
			t.Fatalf("expected query forwarded, got %q", got)
		}
		_, _ = w.Write([]byte(`{"data":{"users":4,"classes":2}}`))
	})

	payload, err := provider.Custom(context.Background(), port.CustomRequest{
		URL:   "dashboard/stats",
		Query: map[string]string{"range": "30d"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("expected unwrapped object, got %T", payload)
	}
	if _, ok := body["data"]; !ok {
		t.Fatalf("custom must not unwrap the envelope: %#v", body)
	}
}
