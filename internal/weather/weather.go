// Package weather is a small OpenWeatherMap current-weather client.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	DefaultTimeout = 10 * time.Second

	maxBodySize = 1 << 20
)

// ErrFetch matches every error returned by Client.Current.
var ErrFetch = errors.New("weather fetch failed")

// Kind tells apart the ways a lookup can fail. Callers that only need to
// know that it failed use errors.Is(err, ErrFetch).
type Kind string

const (
	KindNetwork Kind = "network"
	KindStatus  Kind = "status"
	KindDecode  Kind = "decode"
	KindEmpty   Kind = "empty"
)

type Error struct {
	Kind       Kind
	City       string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("weather for %q: %s", e.City, e.Kind)
	if e.StatusCode != 0 {
		msg += " " + strconv.Itoa(e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrFetch }

// Report is the subset of the current-weather response the bot renders.
type Report struct {
	City        string
	Temp        float64
	TempMin     float64
	TempMax     float64
	Humidity    int
	Description string
}

type apiResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Client is safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	lang    string
	timeout time.Duration
	http    *http.Client
	limiter *rate.Limiter
}

type Option func(*Client)

func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = u } }

func WithLang(lang string) Option { return func(c *Client) { c.lang = lang } }

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithTimeout bounds each request, connection and body read included.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }

// WithRateLimit caps outgoing requests per minute. Zero disables the limit.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		if perMinute <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), max(1, perMinute/10))
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		lang:    "es",
		timeout: DefaultTimeout,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current fetches the current weather for city in metric units. It does
// not retry.
func (c *Client) Current(ctx context.Context, city string) (*Report, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Kind: KindNetwork, City: city, Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL, err := c.requestURL(city)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, City: city, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, City: city, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, City: city, Err: stripURL(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &Error{Kind: KindStatus, City: city, StatusCode: resp.StatusCode}
	}

	var body apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return nil, &Error{Kind: KindDecode, City: city, Err: stripURL(err)}
	}
	if len(body.Weather) == 0 {
		return nil, &Error{Kind: KindEmpty, City: city, Err: errors.New("no weather conditions in response")}
	}

	name := body.Name
	if name == "" {
		name = city
	}
	return &Report{
		City:        name,
		Temp:        body.Main.Temp,
		TempMin:     body.Main.TempMin,
		TempMax:     body.Main.TempMax,
		Humidity:    body.Main.Humidity,
		Description: body.Weather[0].Description,
	}, nil
}

func (c *Client) requestURL(city string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("base url: %w", err)
	}
	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("lang", c.lang)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// stripURL drops the request URL from transport errors; it carries the
// API key in its query string.
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}

// FormatCelsius renders a temperature rounded to one decimal, dropping a
// trailing ".0": 15 -> "15°C", 15.46 -> "15.5°C".
func FormatCelsius(v float64) string {
	v = math.Round(v*10) / 10
	if v == 0 {
		v = 0 // no "-0°C"
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "°C"
}
