package http

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// RequestMethod represents the HTTP method for the request.
type RequestMethod string

const (
	GET    RequestMethod = "GET"
	POST   RequestMethod = "POST"
	PATCH  RequestMethod = "PATCH"
	PUT    RequestMethod = "PUT"
	DELETE RequestMethod = "DELETE"
)

// Request represents an HTTP request with various configuration options.
type Request struct {
	requestClient      *Client
	requestContext     context.Context
	requestMethod      RequestMethod
	requestPath        string
	requestPathParams  map[string]string
	requestQueryParams map[string]string
	requestHeaders     map[string]string
	requestBody        any
	requestSuccessResp any
	requestErrorResp   any
}

// NewHttpClientRequest creates a new Request object with the given client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		requestClient:  client,
		requestContext: context.Background(),
		requestMethod:  GET,
		requestPath:    "/",
	}
}

// WithContext sets the context the request is bound to.
func (r *Request) WithContext(ctx context.Context) *Request {
	r.requestContext = ctx
	return r
}

// WithMethod sets the HTTP method for the request.
func (r *Request) WithMethod(method RequestMethod) *Request {
	r.requestMethod = method
	return r
}

// WithPath sets the path for the request. The path may hold {name} placeholders
// that are filled by WithPathParams.
func (r *Request) WithPath(path string) *Request {
	r.requestPath = path
	return r
}

// WithPathParams sets the values substituted into the path placeholders. Values are path-escaped.
func (r *Request) WithPathParams(params map[string]string) *Request {
	r.requestPathParams = params
	return r
}

// WithQueryParams sets the query parameters for the request.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.requestQueryParams = params
	return r
}

// WithHeaders sets the headers for the request.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.requestHeaders = headers
	return r
}

// WithBody sets the body for the request.
func (r *Request) WithBody(body any) *Request {
	r.requestBody = body
	return r
}

// WithSuccessResp sets the success response for the request.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.requestSuccessResp = successResp
	return r
}

// WithErrorResp sets the error response for the request.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.requestErrorResp = errorResp
	return r
}

// Execute sends the request and returns the success response, error response, status code, and error if any.
func (r *Request) Execute() (any, any, int, error) {
	if r.requestClient == nil {
		return nil, nil, 0, fmt.Errorf("client is required")
	}
	if r.requestMethod == "" {
		return nil, nil, 0, fmt.Errorf("method is required")
	}
	if r.requestPath == "" {
		return nil, nil, 0, fmt.Errorf("path is required")
	}

	path, err := expandPath(r.requestPath, r.requestPathParams)
	if err != nil {
		return nil, nil, 0, err
	}

	ctx := r.requestContext
	if ctx == nil {
		ctx = context.Background()
	}

	return r.requestClient.doRequest(
		ctx,
		string(r.requestMethod),
		path,
		r.requestQueryParams,
		r.requestHeaders,
		r.requestBody,
		r.requestSuccessResp,
		r.requestErrorResp,
	)
}

// expandPath replaces every {name} placeholder with its escaped value.
func expandPath(path string, params map[string]string) (string, error) {
	for name, value := range params {
		placeholder := "{" + name + "}"
		if !strings.Contains(path, placeholder) {
			return "", fmt.Errorf("path %s has no placeholder %s", path, placeholder)
		}
		path = strings.ReplaceAll(path, placeholder, url.PathEscape(value))
	}

	if start := strings.Index(path, "{"); start >= 0 {
		if end := strings.Index(path[start:], "}"); end > 0 {
			return "", fmt.Errorf("missing value for path parameter %s", path[start:start+end+1])
		}
	}

	return path, nil
}
