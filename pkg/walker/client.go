// Package walker provides a client for the VisionPay walker API, the remote
// service hosting the assignment, route-optimization, and risk-analysis jobs.
// The client treats those jobs as opaque: it only speaks the wire contract.
package walker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:8000"

// ErrMalformedPayload marks a 2xx list response whose body is not a JSON
// array. Callers degrade these to empty collections instead of failing the
// whole refresh.
var ErrMalformedPayload = eris.New("walker: malformed payload")

// Client performs the ten walker operations. Every call is a POST with a
// JSON body; none are retried automatically.
type Client interface {
	GetDashboardStats(ctx context.Context) (*Stats, error)
	GetOfficers(ctx context.Context) ([]Officer, error)
	GetMembers(ctx context.Context) ([]Member, error)
	AnalyzeRiskZones(ctx context.Context) ([]RiskZone, error)
	AddOfficer(ctx context.Context, req AddOfficerRequest) error
	AddMember(ctx context.Context, req AddMemberRequest) error
	AssignMembersToOfficers(ctx context.Context, radiusKM int) (*AssignResult, error)
	OptimizeRoute(ctx context.Context, officerID int) (*Route, error)
	GenerateAISummary(ctx context.Context) (*Summary, error)
	RecordPayment(ctx context.Context, req PaymentRequest) error
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets the requests-per-second limit for walker calls.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a walker API client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: rate.NewLimiter(20, 20),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// post sends one walker operation and returns the raw response body.
func (c *httpClient) post(ctx context.Context, op string, reqBody any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "walker: rate limit wait")
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, eris.Wrapf(err, "walker: marshal %s request", op)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/walker/"+op, bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrapf(err, "walker: create %s request", op)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, eris.Wrapf(err, "walker: send %s request", op)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrapf(err, "walker: read %s response", op)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, eris.Errorf("walker: %s unexpected status %d: %s", op, resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

func (c *httpClient) GetDashboardStats(ctx context.Context) (*Stats, error) {
	body, err := c.post(ctx, "GetDashboardStats", struct{}{})
	if err != nil {
		return nil, err
	}
	var stats Stats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, eris.Wrap(err, "walker: unmarshal stats")
	}
	return &stats, nil
}

func (c *httpClient) GetOfficers(ctx context.Context) ([]Officer, error) {
	body, err := c.post(ctx, "GetOfficers", struct{}{})
	if err != nil {
		return nil, err
	}
	var officers []Officer
	if err := json.Unmarshal(body, &officers); err != nil {
		return nil, eris.Wrap(ErrMalformedPayload, "walker: officers response is not a list")
	}
	return officers, nil
}

func (c *httpClient) GetMembers(ctx context.Context) ([]Member, error) {
	body, err := c.post(ctx, "GetMembers", struct{}{})
	if err != nil {
		return nil, err
	}
	var members []Member
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, eris.Wrap(ErrMalformedPayload, "walker: members response is not a list")
	}
	return members, nil
}

func (c *httpClient) AnalyzeRiskZones(ctx context.Context) ([]RiskZone, error) {
	body, err := c.post(ctx, "AnalyzeRiskZones", struct{}{})
	if err != nil {
		return nil, err
	}
	var zones []RiskZone
	if err := json.Unmarshal(body, &zones); err != nil {
		return nil, eris.Wrap(ErrMalformedPayload, "walker: risk zones response is not a list")
	}
	return zones, nil
}

func (c *httpClient) AddOfficer(ctx context.Context, req AddOfficerRequest) error {
	_, err := c.post(ctx, "AddOfficer", req)
	return err
}

func (c *httpClient) AddMember(ctx context.Context, req AddMemberRequest) error {
	_, err := c.post(ctx, "AddMember", req)
	return err
}

func (c *httpClient) AssignMembersToOfficers(ctx context.Context, radiusKM int) (*AssignResult, error) {
	body, err := c.post(ctx, "AssignMembersToOfficers", map[string]int{"radius_km": radiusKM})
	if err != nil {
		return nil, err
	}
	// assigned_count is optional; a body that doesn't parse still means the
	// assignment ran, so only the count is lost.
	var result AssignResult
	if err := json.Unmarshal(body, &result); err != nil {
		return &AssignResult{}, nil
	}
	return &result, nil
}

func (c *httpClient) OptimizeRoute(ctx context.Context, officerID int) (*Route, error) {
	body, err := c.post(ctx, "OptimizeRoute", map[string]int{"officer_id": officerID})
	if err != nil {
		return nil, err
	}
	var route Route
	if err := json.Unmarshal(body, &route); err != nil {
		return nil, eris.Wrap(err, "walker: unmarshal route")
	}
	return &route, nil
}

func (c *httpClient) GenerateAISummary(ctx context.Context) (*Summary, error) {
	body, err := c.post(ctx, "GenerateAISummary", struct{}{})
	if err != nil {
		return nil, err
	}
	var summary Summary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, eris.Wrap(err, "walker: unmarshal summary")
	}
	return &summary, nil
}

func (c *httpClient) RecordPayment(ctx context.Context, req PaymentRequest) error {
	_, err := c.post(ctx, "RecordPayment", req)
	return err
}
