package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"kingdom-tracker/internal/config"

	"github.com/valyala/fasthttp"
)

// ErrNotFound marks a hub 404: the kingdom (or its history) does not
// exist upstream, as opposed to a transport or server failure.
var ErrNotFound = errors.New("hub resource not found")

// HubClient talks to the hosted community hub, the system of record for
// kingdom profiles and season reports.
type HubClient struct {
	apiKey      string
	baseURL     string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

type RateLimitInfo struct {
	Bucket    string `json:"bucket"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`

	// seconds until reset
	Reset int `json:"reset"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewHubClient(cfg *config.Config) *HubClient {
	return &HubClient{
		apiKey:  cfg.HubAPIKey,
		baseURL: cfg.HubBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		rateLimit: RateLimitInfo{
			Limit:     90,
			Remaining: 90,
			Reset:     60,
			UpdatedAt: time.Now(),
		},
	}
}

func (c *HubClient) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *HubClient) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if bucket := string(resp.Header.Peek("X-Ratelimit-Bucket")); bucket != "" {
		c.rateLimit.Bucket = bucket
	}
	if limit := string(resp.Header.Peek("X-Ratelimit-Limit")); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			c.rateLimit.Limit = val
		}
	}
	if remaining := string(resp.Header.Peek("X-Ratelimit-Remaining")); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimit.Remaining = val
		}
	}
	if reset := string(resp.Header.Peek("X-Ratelimit-Reset")); reset != "" {
		if val, err := strconv.Atoi(reset); err == nil {
			c.rateLimit.Reset = val
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

func (c *HubClient) GetKingdom(ctx context.Context, kingdomID int) (*KingdomResponse, error) {
	url := fmt.Sprintf("%s/api/v1/kingdoms/%d", c.baseURL, kingdomID)
	return doRequest[KingdomResponse](ctx, c, url)
}

func (c *HubClient) GetKingdomSeasons(ctx context.Context, kingdomID int) (*SeasonsResponse, error) {
	url := fmt.Sprintf("%s/api/v1/kingdoms/%d/seasons", c.baseURL, kingdomID)
	return doRequest[SeasonsResponse](ctx, c, url)
}

func (c *HubClient) GetKingdomList(ctx context.Context) (*KingdomListResponse, error) {
	url := fmt.Sprintf("%s/api/v1/kingdoms", c.baseURL)
	return doRequest[KingdomListResponse](ctx, c, url)
}

func doRequest[T any](ctx context.Context, client *HubClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() == fasthttp.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("hub API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type KingdomResponse struct {
	Status int         `json:"status"`
	Data   KingdomData `json:"data"`
}

type KingdomData struct {
	KingdomID   int    `json:"kingdom_id"`
	Name        string `json:"name"`
	AllianceTag string `json:"alliance_tag"`
	Power       int64  `json:"power"`
	UpdatedAt   string `json:"updated_at"`
}

type KingdomListResponse struct {
	Status  int           `json:"status"`
	Results ResponseStats `json:"results"`
	Data    []KingdomData `json:"data"`
}

type SeasonsResponse struct {
	Status  int           `json:"status"`
	Results ResponseStats `json:"results"`
	Data    []SeasonItem  `json:"data"`
}

type SeasonItem struct {
	SeasonNumber int       `json:"season_number"`
	OpponentID   int       `json:"opponent_id"`
	PhaseOne     string    `json:"phase_one"`
	PhaseTwo     string    `json:"phase_two"`
	ReportedAt   time.Time `json:"reported_at"`
}

type ResponseStats struct {
	Total    int `json:"total"`
	Returned int `json:"returned"`
}
