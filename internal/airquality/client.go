// Package airquality fetches current air quality for a coordinate from the
// IQAir AirVisual API.
package airquality

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/edgard/airbot/internal/location"
)

// DefaultBaseURL is the AirVisual "nearest city" endpoint.
const DefaultBaseURL = "https://api.airvisual.com/v2/nearest_city"

// errorBodyLimit caps how much of a failed response body is kept in the error.
const errorBodyLimit = 4 << 10

// Reading is the air quality reported for the city nearest to a coordinate.
type Reading struct {
	City      string
	AQI       int // US EPA index
	FetchedAt time.Time
}

// Client fetches air quality readings. Implementations must be safe for concurrent use.
type Client interface {
	Fetch(ctx context.Context, coord location.Coordinate) (Reading, error)
}

// httpClient talks to the AirVisual HTTP API. It holds no mutable state.
type httpClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient builds an AirVisual client. An empty baseURL selects DefaultBaseURL.
// A nil hc selects a new http.Client without a timeout, so the transport
// defaults apply.
func NewClient(baseURL, apiKey string, hc *http.Client) (Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("air quality API key is required")
	}
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = DefaultBaseURL
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &httpClient{
		baseURL:    strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: hc,
		now:        time.Now,
	}, nil
}

// Fetch sends a single request for the coordinate. It never retries and never caches.
func (c *httpClient) Fetch(ctx context.Context, coord location.Coordinate) (Reading, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	q.Set("key", c.apiKey)
	endpoint := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Reading{}, &FetchError{Kind: KindNetwork, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reading{}, &FetchError{Kind: KindNetwork, Err: redactKey(err, c.apiKey)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return Reading{}, &FetchError{
			Kind:       KindUpstream,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body=%s", strings.TrimSpace(string(payload))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Reading{}, &FetchError{Kind: KindNetwork, Err: fmt.Errorf("read response: %w", err)}
	}

	reading, err := decodeReading(body)
	if err != nil {
		return Reading{}, &FetchError{Kind: KindMalformed, Err: err}
	}
	reading.FetchedAt = c.now()
	return reading, nil
}

type apiResponse struct {
	Data *apiData `json:"data"`
}

type apiData struct {
	City    *string     `json:"city"`
	Current *apiCurrent `json:"current"`
}

type apiCurrent struct {
	Pollution *apiPollution `json:"pollution"`
}

type apiPollution struct {
	AQIUS *int `json:"aqius"`
}

func decodeReading(body []byte) (Reading, error) {
	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return Reading{}, fmt.Errorf("decode response: %w", err)
	}
	switch {
	case raw.Data == nil:
		return Reading{}, errors.New("missing data")
	case raw.Data.City == nil:
		return Reading{}, errors.New("missing data.city")
	case raw.Data.Current == nil || raw.Data.Current.Pollution == nil || raw.Data.Current.Pollution.AQIUS == nil:
		return Reading{}, errors.New("missing data.current.pollution.aqius")
	}
	return Reading{
		City: *raw.Data.City,
		AQI:  *raw.Data.Current.Pollution.AQIUS,
	}, nil
}

// redactKey strips the credential from transport errors, which embed the request URL.
func redactKey(err error, key string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{
			Op:  urlErr.Op,
			URL: strings.ReplaceAll(urlErr.URL, url.QueryEscape(key), "REDACTED"),
			Err: urlErr.Err,
		}
	}
	return err
}
