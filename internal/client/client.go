package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/meridianhq/meridian/api/handlers"
	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/quality"
)

const requestTimeout = 10 * time.Second

// Config represents the options for reaching a meridian server.
type Config struct {
	Host                string `yaml:"host" mapstructure:"host" default:"http://localhost:8080"`
	IdentityHeaderKey   string `yaml:"identityheaderkey" mapstructure:"identityheaderkey" default:"Meridian-User-Email"`
	IdentityHeaderValue string `yaml:"identityheadervalue" mapstructure:"identityheadervalue" default:"meridian@meridianhq.io"`
}

// Client talks to the meridian HTTP API. Every request carries the
// configured identity header.
type Client struct {
	config     Config
	httpClient *http.Client
}

func New(cfg Config) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) ListAssets(ctx context.Context, flt asset.Filter) ([]asset.Asset, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1beta1/assets", filterQuery(flt), nil)
	if err != nil {
		return nil, err
	}

	var assets []asset.Asset
	if err := c.send(req, http.StatusOK, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (c *Client) GetAsset(ctx context.Context, id string) (asset.Asset, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1beta1/assets/"+id, nil, nil)
	if err != nil {
		return asset.Asset{}, err
	}

	var ast asset.Asset
	if err := c.send(req, http.StatusOK, &ast); err != nil {
		return asset.Asset{}, err
	}
	return ast, nil
}

func (c *Client) CreateAsset(ctx context.Context, ast asset.Asset) (asset.Asset, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/v1beta1/assets", nil, ast)
	if err != nil {
		return asset.Asset{}, err
	}

	var created asset.Asset
	if err := c.send(req, http.StatusCreated, &created); err != nil {
		return asset.Asset{}, err
	}
	return created, nil
}

func (c *Client) ReplaceAsset(ctx context.Context, ast asset.Asset) (asset.Asset, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/v1beta1/assets/"+ast.ID, nil, ast)
	if err != nil {
		return asset.Asset{}, err
	}

	var replaced asset.Asset
	if err := c.send(req, http.StatusOK, &replaced); err != nil {
		return asset.Asset{}, err
	}
	return replaced, nil
}

func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1beta1/assets/"+id, nil, nil)
	if err != nil {
		return err
	}
	return c.send(req, http.StatusNoContent, nil)
}

func (c *Client) ListIssues(ctx context.Context) ([]quality.Issue, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1beta1/quality/issues", nil, nil)
	if err != nil {
		return nil, err
	}

	var issues []quality.Issue
	if err := c.send(req, http.StatusOK, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// Export downloads the collection in the given format, returning the
// payload together with the server-chosen filename.
func (c *Client) Export(ctx context.Context, format string, flt asset.Filter) ([]byte, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1beta1/exports/"+format, filterQuery(flt), nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", decodeError(resp)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return payload, dispositionFilename(resp.Header.Get("Content-Disposition")), nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSuffix(c.config.Host, "/")+path, buf)
	if err != nil {
		return nil, err
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set(c.config.IdentityHeaderKey, c.config.IdentityHeaderValue)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) send(req *http.Request, expectStatus int, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != expectStatus {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var er handlers.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Reason == "" {
		return fmt.Errorf("unexpected response status %d", resp.StatusCode)
	}
	return fmt.Errorf("%s (status %d)", er.Reason, resp.StatusCode)
}

func filterQuery(flt asset.Filter) url.Values {
	query := url.Values{}
	if flt.Search != "" {
		query.Set("search", flt.Search)
	}
	if len(flt.Regions) > 0 {
		query.Set("region", strings.Join(flt.Regions, ","))
	}
	if len(flt.Types) > 0 {
		query.Set("type", strings.Join(flt.Types, ","))
	}
	if len(flt.Statuses) > 0 {
		query.Set("status", strings.Join(flt.Statuses, ","))
	}
	return query
}

func dispositionFilename(disposition string) string {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
