package enquiryform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"mfroosh-trade-backend/internal/domain"
)

// EnquiryPath is where the server accepts enquiries.
const EnquiryPath = "/api/send-enquiry"

// ErrNetwork marks failures where no usable response came back: the request
// never reached the server or the body could not be decoded.
var ErrNetwork = errors.New("enquiry request failed")

// Result is a decoded server answer, successful or not.
type Result struct {
	StatusCode int
	Response   domain.EnquiryResponse
}

// OK reports whether the server accepted the enquiry.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299 && r.Response.Success
}

// Client posts enquiries to the website backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. A nil httpClient means
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Send issues exactly one POST. Non-2xx answers with a decodable body are
// returned as a Result, not an error.
func (c *Client) Send(ctx context.Context, req domain.EnquiryRequest) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode enquiry: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+EnquiryPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build enquiry request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNetwork, err)
	}

	result := &Result{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(raw, &result.Response); err != nil {
		return nil, fmt.Errorf("%w: status %d with undecodable body: %v", ErrNetwork, resp.StatusCode, err)
	}

	return result, nil
}
