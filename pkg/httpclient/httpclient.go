package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client issues HTTP requests and classifies the response status before
// handing the raw body back to the caller.
type Client interface {
	Get(ctx context.Context, rawURL string, params map[string]string) ([]byte, error)
	Post(ctx context.Context, rawURL string, body []byte) ([]byte, error)
}

// Doer is the subset of *http.Client the transport needs, so tests can
// substitute a fake without a real network.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type DefaultClient struct {
	httpClient Doer
}

func NewDefaultClient(httpClient Doer) *DefaultClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &DefaultClient{httpClient: httpClient}
}

// Get appends params to the URL query and performs a GET request. Parameters
// are added on top of any query already present in rawURL; keys are not
// de-duplicated.
func (c *DefaultClient) Get(ctx context.Context, rawURL string, params map[string]string) ([]byte, error) {
	requestURL := rawURL
	if len(params) > 0 {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse url %s: %w", rawURL, err)
		}

		query := u.Query()
		for key, value := range params {
			query.Add(key, value)
		}
		u.RawQuery = query.Encode()
		requestURL = u.String()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.performRequest(req)
}

func (c *DefaultClient) Post(ctx context.Context, rawURL string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.performRequest(req)
}

func (c *DefaultClient) performRequest(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	code, message := decodeErrorBody(body)

	return nil, &HTTPError{
		StatusCode: resp.StatusCode,
		Code:       code,
		Message:    message,
	}
}

// decodeErrorBody extracts the server error envelope {error:{code,message}}.
// A body that does not match the envelope is tolerated: the status error is
// still raised, just without code or message.
func decodeErrorBody(body []byte) (int, string) {
	var envelope struct {
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return 0, ""
	}

	return envelope.Error.Code, envelope.Error.Message
}
