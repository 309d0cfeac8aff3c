package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"campusAdmin/internal/modules/catalog/application/port"
	"campusAdmin/internal/modules/catalog/domain"
	"campusAdmin/internal/shared/httperror"
	"campusAdmin/internal/shared/rest"
)

// RESTProvider implements the DataProvider contract over the shared REST
// transport. It is stateless; credentials live in the transport's cookie jar.
type RESTProvider struct {
	rest *rest.Client
}

var _ port.DataProvider = (*RESTProvider)(nil)

func NewRESTProvider(client *rest.Client) *RESTProvider {
	return &RESTProvider{rest: client}
}

func (p *RESTProvider) APIURL() string {
	return p.rest.BaseURL()
}

type listEnvelope struct {
	Data       []domain.Record `json:"data"`
	Pagination *struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

type itemEnvelope struct {
	Data domain.Record `json:"data"`
}

func (p *RESTProvider) List(ctx context.Context, resource string, query domain.ListQuery) (domain.ListResult, error) {
	endpoint := strings.TrimSpace(resource) + "?" + buildListValues(resource, query).Encode()
	body, err := p.roundTrip(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return domain.ListResult{}, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return domain.ListResult{}, httperror.New(fmt.Sprintf("decode %s list: %v", resource, err), 0)
	}

	data := envelope.Data
	if data == nil {
		data = []domain.Record{}
	}
	total := len(data)
	if envelope.Pagination != nil {
		total = envelope.Pagination.Total
	}
	return domain.ListResult{Data: data, Total: total}, nil
}

func (p *RESTProvider) GetOne(ctx context.Context, resource, id string) (domain.Record, error) {
	return p.item(ctx, http.MethodGet, itemEndpoint(resource, id), nil, true)
}

func (p *RESTProvider) Create(ctx context.Context, resource string, values domain.Record) (domain.Record, error) {
	return p.item(ctx, http.MethodPost, strings.TrimSpace(resource), values, true)
}

func (p *RESTProvider) Update(ctx context.Context, resource, id string, values domain.Record) (domain.Record, error) {
	return p.item(ctx, http.MethodPut, itemEndpoint(resource, id), values, true)
}

// DeleteOne is deliberately lenient about the response envelope: backends
// answering a successful delete without a data field get a zero record back
// instead of an error.
func (p *RESTProvider) DeleteOne(ctx context.Context, resource, id string) (domain.Record, error) {
	return p.item(ctx, http.MethodDelete, itemEndpoint(resource, id), nil, false)
}

func (p *RESTProvider) item(ctx context.Context, method, endpoint string, values domain.Record, strict bool) (domain.Record, error) {
	var payload io.Reader
	if values != nil {
		raw, err := json.Marshal(values)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(raw)
	}

	body, err := p.roundTrip(ctx, method, endpoint, payload, nil)
	if err != nil {
		return nil, err
	}

	var envelope itemEnvelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, httperror.New(fmt.Sprintf("decode %s response: %v", endpoint, err), 0)
		}
	}
	if envelope.Data == nil {
		if strict {
			return nil, domain.ErrNotFound
		}
		return domain.Record{}, nil
	}
	return envelope.Data, nil
}

// Custom forwards an arbitrary request and returns the raw decoded body with
// no envelope assumption. Used for the dashboard statistics and chart
// endpoints, which do not follow the CRUD contract.
func (p *RESTProvider) Custom(ctx context.Context, req port.CustomRequest) (any, error) {
	endpoint := strings.TrimSpace(req.URL)
	if len(req.Query) > 0 {
		values := url.Values{}
		for key, value := range req.Query {
			values.Set(key, value)
		}
		separator := "?"
		if strings.Contains(endpoint, "?") {
			separator = "&"
		}
		endpoint = endpoint + separator + values.Encode()
	}

	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = http.MethodGet
	}

	var payload io.Reader
	if req.Payload != nil {
		raw, err := json.Marshal(req.Payload)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(raw)
	}

	body, err := p.roundTrip(ctx, method, endpoint, payload, req.Headers)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, httperror.New(fmt.Sprintf("decode custom response: %v", err), 0)
	}
	return decoded, nil
}

func (p *RESTProvider) roundTrip(ctx context.Context, method, endpoint string, payload io.Reader, headers map[string]string) ([]byte, error) {
	req, err := p.rest.NewRequest(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := p.rest.Do(req)
	if err != nil {
		return nil, httperror.New(err.Error(), 0)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, httperror.New(err.Error(), 0)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, httperror.FromResponse(res.StatusCode, body)
	}
	return body, nil
}

func itemEndpoint(resource, id string) string {
	return strings.TrimSpace(resource) + "/" + url.PathEscape(strings.TrimSpace(id))
}
