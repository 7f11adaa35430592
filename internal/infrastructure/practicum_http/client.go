package practicum_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/davarch/hw-watcher/internal/domain"
)

type Client struct {
	endpoint string
	token    string
	hc       *http.Client
}

// New builds a client for the homework statuses endpoint. A zero timeout
// leaves requests unbounded.
func New(endpoint string, token string, timeout time.Duration) *Client {
	tr := &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		MaxIdleConns:    10,
		IdleConnTimeout: 90 * time.Second,
	}

	return &Client{
		endpoint: endpoint,
		token:    token,
		hc:       &http.Client{Transport: tr, Timeout: timeout},
	}
}

func (c *Client) HomeworkStatuses(ctx context.Context, from int64) (json.RawMessage, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &domain.TransportError{URL: c.endpoint, Err: err}
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(from, 10))
	u.RawQuery = q.Encode()
	reqURL := u.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.TransportError{URL: reqURL, Err: err}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: reqURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.RemoteStatusError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &domain.ShapeError{Reason: "response body is not JSON: " + err.Error()}
	}

	return body, nil
}
