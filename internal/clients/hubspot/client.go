package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/dealsync/internal/entity"
	"github.com/samandr77/microservices/dealsync/pkg/config"
	"github.com/samandr77/microservices/dealsync/pkg/transport"
)

const (
	objectsPath         = "/crm/v3/objects"
	operatorEQ          = "EQ"
	defaultRetryWaitMax = time.Second * 5
)

type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(cfg config.HubSpot) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewBearerRoundTripper(http.DefaultTransport, cfg.Token)

	retryClient.Logger = nil

	// Only transport failures are retried; CRM answers are returned as they are.
	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

type (
	SearchRequest struct {
		FilterGroups []FilterGroup `json:"filterGroups"`
		Limit        int           `json:"limit,omitempty"`
	}

	FilterGroup struct {
		Filters []Filter `json:"filters"`
	}

	Filter struct {
		PropertyName string `json:"propertyName"`
		Operator     string `json:"operator"`
		Value        string `json:"value"`
	}
)

type SearchResponse struct {
	Total   int      `json:"total"`
	Results []Object `json:"results"`
}

type Object struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type ObjectInput struct {
	Properties entity.Properties `json:"properties"`
}

type ErrorResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Category      string `json:"category"`
	CorrelationID string `json:"correlationId"`
}

// FindByProperty returns the id of the first object whose property equals value,
// or entity.ErrNotFound.
func (c *Client) FindByProperty(ctx context.Context, objectType entity.ObjectType, property, value string) (string, error) {
	reqData := SearchRequest{
		FilterGroups: []FilterGroup{{
			Filters: []Filter{{PropertyName: property, Operator: operatorEQ, Value: value}},
		}},
		Limit: 1,
	}

	var data SearchResponse

	err := c.do(ctx, http.MethodPost, objectsPath+"/"+objectType.String()+"/search", reqData, &data)
	if err != nil {
		return "", fmt.Errorf("search %s by %s: %w", objectType, property, err)
	}

	if len(data.Results) == 0 {
		return "", fmt.Errorf("%s with %s %q: %w", objectType, property, value, entity.ErrNotFound)
	}

	return data.Results[0].ID, nil
}

func (c *Client) Create(ctx context.Context, objectType entity.ObjectType, props entity.Properties) (string, error) {
	var data Object

	err := c.do(ctx, http.MethodPost, objectsPath+"/"+objectType.String(), ObjectInput{Properties: entity.Clean(props)}, &data)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", objectType, err)
	}

	if data.ID == "" {
		return "", fmt.Errorf("create %s: empty id in response", objectType)
	}

	return data.ID, nil
}

// Update patches the listed properties; properties left out stay untouched.
func (c *Client) Update(ctx context.Context, objectType entity.ObjectType, id string, props entity.Properties) error {
	path := objectsPath + "/" + objectType.String() + "/" + url.PathEscape(id)

	err := c.do(ctx, http.MethodPatch, path, ObjectInput{Properties: entity.Clean(props)}, nil)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", objectType, id, err)
	}

	return nil
}

// Associate asserts an association. The endpoint is idempotent.
func (c *Client) Associate(ctx context.Context, assoc entity.Association, fromID, toID string) error {
	path := fmt.Sprintf("%s/%s/%s/associations/%s/%s/%s",
		objectsPath, assoc.From, url.PathEscape(fromID), assoc.To, url.PathEscape(toID), assoc.Type)

	err := c.do(ctx, http.MethodPut, path, struct{}{}, nil)
	if err != nil {
		return fmt.Errorf("associate %s %s -> %s: %w", assoc, fromID, toID, err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return parseError(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func parseError(statusCode int, body []byte) error {
	remoteErr := &entity.RemoteError{
		StatusCode: statusCode,
		Body:       body,
	}

	var errorResp ErrorResponse

	err := json.Unmarshal(body, &errorResp)
	if err == nil {
		remoteErr.Category = errorResp.Category
		remoteErr.Message = errorResp.Message
	}

	return remoteErr
}
