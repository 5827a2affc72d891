// Package client talks to the careerline API on behalf of the draft editor
// and the CLI.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"careerline.app/studio/internal/http/dto"
	"careerline.app/studio/internal/listing"
	"careerline.app/studio/internal/model"
)

const SessionHeader = "X-Session-ID"

// APIError is a failure reported by the backend. Message is shown to users as is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Config struct {
	BaseURL   string
	SessionID string
	Timeout   time.Duration
	RetryMax  int
}

type Client struct {
	http      *retryablehttp.Client
	baseURL   string
	sessionID string
}

func New(cfg Config) *Client {
	rc := retryablehttp.NewClient()
	rc.Logger = slog.Default()
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	// Hand the last response back so the error envelope can be read.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rc.HTTPClient.Timeout = timeout

	return &Client{
		http:      rc,
		baseURL:   cfg.BaseURL,
		sessionID: cfg.SessionID,
	}
}

// FetchDraft returns nil without error when the company has no draft yet.
func (c *Client) FetchDraft(ctx context.Context, companyID int64) (*model.Draft, error) {
	var resp dto.DraftResponse
	if err := c.do(ctx, http.MethodGet, "/api/companies/save", companyQuery(companyID), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Draft, nil
}

// FetchLive returns the published snapshot, hidden sections included.
func (c *Client) FetchLive(ctx context.Context, companyID int64) (*model.Snapshot, error) {
	var resp dto.DataResponse[*model.Snapshot]
	if err := c.do(ctx, http.MethodGet, "/api/companies/live", companyQuery(companyID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, &APIError{Status: http.StatusNotFound, Message: "company not found"}
	}
	return resp.Data, nil
}

func (c *Client) SaveDraft(ctx context.Context, companyID int64, snapshot model.Snapshot) (time.Time, error) {
	req := saveRequest{
		CompanyID: companyID,
		Company:   snapshot.Company,
		Settings:  snapshot.Settings,
		Sections:  snapshot.Sections,
	}

	var resp dto.SaveDraftResponse
	if err := c.do(ctx, http.MethodPost, "/api/companies/save", nil, req, &resp); err != nil {
		return time.Time{}, err
	}
	return resp.UpdatedAt, nil
}

type PublishResult struct {
	PublishedAt time.Time
	URL         string
}

func (c *Client) Publish(ctx context.Context, companyID int64) (*PublishResult, error) {
	var resp dto.PublishResponse
	if err := c.do(ctx, http.MethodPost, "/api/companies/publish", nil, dto.PublishRequest{CompanyID: companyID}, &resp); err != nil {
		return nil, err
	}
	return &PublishResult{PublishedAt: resp.PublishedAt, URL: resp.URL}, nil
}

func (c *Client) Jobs(ctx context.Context, slug string, f listing.Filters) (*listing.Result, error) {
	q := url.Values{}
	setIf(q, "search", f.Search)
	setIf(q, "location", f.Location)
	setIf(q, "department", f.Department)
	setIf(q, "work_policy", string(f.WorkPolicy))
	setIf(q, "employment_type", string(f.EmploymentType))
	setIf(q, "experience_level", string(f.ExperienceLevel))

	var resp dto.DataResponse[*listing.Result]
	path := "/api/careers/" + url.PathEscape(slug) + "/jobs"
	if err := c.do(ctx, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

type saveRequest struct {
	CompanyID int64                  `json:"company_id"`
	Company   model.Company          `json:"company"`
	Settings  model.CompanySettings  `json:"settings"`
	Sections  []model.ContentSection `json:"sections"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessionID != "" {
		req.Header.Set(SessionHeader, c.sessionID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env dto.ErrorResponse
		if err := json.Unmarshal(raw, &env); err != nil || env.Error == "" {
			env.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: env.Error}
	}

	var env dto.ErrorResponse
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Error}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func companyQuery(companyID int64) url.Values {
	return url.Values{"company_id": {strconv.FormatInt(companyID, 10)}}
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
