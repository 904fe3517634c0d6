package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	followRedirect     bool
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	InsecureSkipVerify  bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	Logger              HTTPLogger
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	if opts.InsecureSkipVerify {
		// Only meant for local development certificates.
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		followRedirect:     opts.FollowRedirect,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
	}
}

// BaseURL returns the normalized base URL requests are sent to.
func (hc *Client) BaseURL() string {
	return hc.baseURL
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request to the specified path with optional query parameters, headers, and response types.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) Get(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodGet, path, queryParams, headers, nil, successResp, errorResp)
}

// Post sends a POST request to the specified path with optional query parameters, headers, and response types.
func (hc *Client) Post(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodPost, path, queryParams, headers, body, successResp, errorResp)
}

// doRequest builds the URL, prepares the request body, sets headers, executes the request, and handles the response.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	url := hc.buildURL(path)
	if len(queryParams) > 0 {
		url += "?" + buildQueryString(queryParams)
	}

	bodyReader, contentType, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", hc.defaultContentType)
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	loggedHeaders := flattenHeaders(req.Header)
	loggedBody := describeBody(body)
	if hc.logger != nil {
		hc.logger.LogRequest(method, url, loggedHeaders, loggedBody)
	}

	start := time.Now()
	resp, err := hc.client.Do(req)
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(method, url, loggedHeaders, loggedBody, 0, "", time.Since(start).Milliseconds(), err)
		}
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return nil, nil, resp.StatusCode, err
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(method, url, loggedHeaders, loggedBody, resp.StatusCode, string(bodyBytes), latency)
		}
		if successResp != nil && len(bodyBytes) > 0 {
			err = hc.unmarshalResponse(bodyBytes, respContentType, successResp)
			if err != nil {
				return nil, nil, resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	if resp.StatusCode == http.StatusNotFound && hc.dismiss404 {
		return nil, nil, resp.StatusCode, nil
	}

	statusErr := fmt.Errorf("http error: status %d", resp.StatusCode)
	if hc.logger != nil {
		hc.logger.LogResponseError(method, url, loggedHeaders, loggedBody, resp.StatusCode, string(bodyBytes), latency, statusErr)
	}

	// An error body that cannot be decoded is dropped; the status is what matters.
	if errorResp != nil && len(bodyBytes) > 0 {
		if err := hc.unmarshalResponse(bodyBytes, respContentType, errorResp); err != nil {
			errorResp = nil
		}
	} else {
		errorResp = nil
	}

	return nil, errorResp, resp.StatusCode, statusErr
}

// encodeBody serializes the request body according to its type and the client's default content type.
func (hc *Client) encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch body := body.(type) {
	case string:
		return bytes.NewBufferString(body), "text/plain", nil
	case []byte:
		return bytes.NewBuffer(body), "application/octet-stream", nil
	}

	switch hc.defaultContentType {
	case "application/xml":
		xmlBody, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return bytes.NewBuffer(xmlBody), "application/xml", nil
	case "text/plain":
		return bytes.NewBufferString(fmt.Sprintf("%v", body)), "text/plain", nil
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return bytes.NewBuffer(jsonBody), "application/json", nil
	}
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	// Extract the main content type (remove charset and other parameters)
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	case "application/octet-stream":
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = bodyBytes
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		// application/json, application/problem+json and anything unknown
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(hc.baseURL, "/") + path
}

// buildQueryString builds an encoded query string, sorted by key
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for key := range header {
		flat[key] = header.Get(key)
	}
	return flat
}

func describeBody(body any) string {
	switch body := body.(type) {
	case nil:
		return ""
	case string:
		return body
	case []byte:
		return fmt.Sprintf("<%d bytes>", len(body))
	default:
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Sprintf("%v", body)
		}
		return string(encoded)
	}
}
