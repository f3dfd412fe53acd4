package lastfm

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Base represents the root XML envelope of every Last.fm API response.
type Base struct {
	XMLName xml.Name `xml:"lfm"`
	Status  string   `xml:"status,attr"`
	Inner   []byte   `xml:",innerxml"`
}

// APIError represents an error response from the Last.fm API.
type APIError struct {
	Code    int    `xml:"code,attr"`
	Message string `xml:",chardata"`
}

const (
	apiStatusOK     = "ok"
	apiStatusFailed = "failed"
)

// call makes a single HTTP request to the Last.fm API.
//
// It handles:
// - Request construction with proper headers
// - Signature calculation
// - Response parsing (XML envelope)
// - API error mapping
// - Context cancellation
//
// Requests are not retried; any failure propagates to the caller.
func (c *Client) call(ctx context.Context, method string, params map[string]string) ([]byte, error) {
	// Build request parameters
	reqParams := make(map[string]string, len(params)+2)
	for k, v := range params {
		reqParams[k] = v
	}
	reqParams["method"] = method
	reqParams["api_key"] = c.apiKey

	// Calculate signature
	signature := calculateSignature(reqParams, c.apiSecret)

	// Build form data
	formData := url.Values{}
	for k, v := range reqParams {
		formData.Add(k, v)
	}
	formData.Add("api_sig", signature)

	c.logDebugf("lastfm: calling %s", method)

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "lastfmeoystats/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Parse the XML envelope. Last.fm delivers error envelopes with 4xx
	// status codes, so the body is inspected before the status code.
	var base Base
	if err := xml.Unmarshal(body, &base); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to parse XML response: %w", err)
	}

	if base.Status == apiStatusFailed {
		var apiErr APIError
		if err := xml.Unmarshal(base.Inner, &apiErr); err != nil {
			return nil, fmt.Errorf("failed to parse error response: %w", err)
		}
		return nil, &Error{
			Code:    apiErr.Code,
			Message: apiErr.Message,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	c.logDebugf("lastfm: %s succeeded", method)
	return base.Inner, nil
}
