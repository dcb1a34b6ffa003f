// Package tmdb is a typed client for The Movie Database (TMDB) v3 API.
package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

var errEmptyBody = errors.New("empty response body")

// maxErrorBody bounds how much of a failed response is kept for the message.
const maxErrorBody = 64 << 10

// Client is a TMDB API client. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log == nil {
			c.log = nil
			return
		}
		c.log = log.With("component", "tmdb")
	}
}

// WithLanguage sets the language sent when a call does not pass Language.
func WithLanguage(code string) Option {
	return func(c *Client) {
		c.language = code
	}
}

// New creates a new TMDB client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Param sets one optional query parameter on a request.
type Param func(url.Values)

// Language selects the response language (ISO 639-1, optionally with region: "en-US").
func Language(code string) Param {
	return func(v url.Values) {
		if code != "" {
			v.Set("language", code)
		}
	}
}

// Append requests extra sub-resources embedded in the same response.
func Append(methods ...string) Param {
	return func(v url.Values) {
		if len(methods) == 0 {
			return
		}
		v.Set("append_to_response", strings.Join(methods, ","))
	}
}

// Page selects a page of a paged list. Pages start at 1.
func Page(n int) Param {
	return func(v url.Values) {
		if n > 0 {
			v.Set("page", strconv.Itoa(n))
		}
	}
}

// Year filters movie searches by release year.
func Year(y int) Param {
	return func(v url.Values) {
		if y > 0 {
			v.Set("year", strconv.Itoa(y))
		}
	}
}

// FirstAirDateYear filters TV searches by first air date year.
func FirstAirDateYear(y int) Param {
	return func(v url.Values) {
		if y > 0 {
			v.Set("first_air_date_year", strconv.Itoa(y))
		}
	}
}

// IncludeAdult includes adult titles in search results.
func IncludeAdult(include bool) Param {
	return func(v url.Values) {
		v.Set("include_adult", strconv.FormatBool(include))
	}
}

// Region filters list endpoints by ISO 3166-1 country code.
func Region(code string) Param {
	return func(v url.Values) {
		if code != "" {
			v.Set("region", code)
		}
	}
}

// IncludeImageLanguage selects which image languages the images endpoints return.
// Use "null" for images without a language.
func IncludeImageLanguage(codes ...string) Param {
	return func(v url.Values) {
		if len(codes) == 0 {
			return
		}
		v.Set("include_image_language", strings.Join(codes, ","))
	}
}

// ExternalSource names the id namespace for FindByExternalID, e.g. "imdb_id".
func ExternalSource(source string) Param {
	return func(v url.Values) {
		if source != "" {
			v.Set("external_source", source)
		}
	}
}

// get performs a GET against path and decodes the 2xx body into out.
func (c *Client) get(ctx context.Context, path string, out any, params ...Param) error {
	start := time.Now()

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	if c.language != "" {
		query.Set("language", c.language)
	}
	for _, p := range params {
		p(query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return &Error{Kind: KindTransport, Endpoint: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Endpoint: path, Err: fmt.Errorf("execute request: %w", redactKey(err))}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkResponse(path, resp); err != nil {
		if c.log != nil {
			c.log.Debug("request failed", "endpoint", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())
		}
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Endpoint: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &Error{Kind: KindDecode, Endpoint: path, StatusCode: resp.StatusCode, Err: errEmptyBody}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindDecode, Endpoint: path, StatusCode: resp.StatusCode, Err: err}
	}

	if c.log != nil {
		for _, field := range UnknownFields(out) {
			c.log.Debug("unknown field", "endpoint", path, "path", field)
		}
		c.log.Debug("request completed", "endpoint", path, "duration_ms", time.Since(start).Milliseconds())
	}

	return nil
}

// checkResponse turns a non-2xx response into a *Error, keeping TMDB's
// status_code and status_message when the body carries them.
func (c *Client) checkResponse(path string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &Error{
		Kind:       KindStatus,
		Endpoint:   path,
		StatusCode: resp.StatusCode,
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var status statusBody
	if err := json.Unmarshal(body, &status); err == nil && status.StatusMessage != "" {
		apiErr.Code = status.StatusCode
		apiErr.Message = status.StatusMessage
	} else if len(body) > 0 {
		apiErr.Message = string(body)
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

// redactKey strips the request URL from transport errors so the api_key
// query parameter never reaches logs.
func redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

func getList[T any](ctx context.Context, c *Client, path string, params []Param) (*ResultsList[T], error) {
	var list ResultsList[T]
	if err := c.get(ctx, path, &list, params...); err != nil {
		return nil, err
	}
	return &list, nil
}

func checkID(kind string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%s id %d: %w", kind, id, ErrInvalidArgument)
	}
	return nil
}

// yearOf extracts the year from a "YYYY-MM-DD" date.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}
