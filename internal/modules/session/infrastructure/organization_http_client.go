package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	catalog "campusAdmin/internal/modules/catalog/domain"
	"campusAdmin/internal/modules/session/application/port"
	"campusAdmin/internal/shared/httperror"
	"campusAdmin/internal/shared/rest"
)

// OrganizationHTTPClient resolves organization records through the same
// transport the data provider uses. Some backend builds wrap the record in
// the usual envelope, some return it bare; both are accepted.
type OrganizationHTTPClient struct {
	rest *rest.Client
}

var _ port.OrganizationFetcher = (*OrganizationHTTPClient)(nil)

func NewOrganizationHTTPClient(client *rest.Client) *OrganizationHTTPClient {
	return &OrganizationHTTPClient{rest: client}
}

func (c *OrganizationHTTPClient) FetchOrganization(ctx context.Context, id string) (catalog.Record, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, "organization/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.rest.Do(req)
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

	var envelope struct {
		Data catalog.Record `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var bare catalog.Record
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, httperror.New(fmt.Sprintf("decode organization %s: %v", id, err), 0)
	}
	return bare, nil
}
