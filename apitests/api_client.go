package apitests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const maxBodyExcerptLength = 200

// APIClient is the harness's HTTP session with the API under test. It owns the
// base URL, a client with a bounded per-request timeout, and a set of default
// headers that are merged into every outgoing request. Storing a bearer token
// is a one-way transition: the authentication check sets it once, after which
// every subsequent request carries an Authorization header.
type APIClient struct {
	baseURL        string
	httpClient     *http.Client
	defaultHeaders http.Header
	authToken      string
}

// APIResponse is the harness's view of one HTTP response: the status code and
// the full body. A nil response is never returned without an error.
type APIResponse struct {
	Status int
	Body   []byte
}

func NewAPIClient(baseURL string, requestTimeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: requestTimeout},
		defaultHeaders: make(http.Header),
	}
}

func (c *APIClient) BaseURL() string {
	return c.baseURL
}

func (c *APIClient) HasToken() bool {
	return c.authToken != ""
}

// SetToken stores the bearer token returned by login. All requests made after
// this point include an Authorization header.
func (c *APIClient) SetToken(token string) {
	c.authToken = token
	c.defaultHeaders.Set("Authorization", "Bearer "+token)
}

// Get issues a GET request to the given path (relative to the base URL), with
// optional query parameters.
func (c *APIClient) Get(path string, params url.Values) (*APIResponse, error) {
	requestURL := c.baseURL + path
	if len(params) != 0 {
		requestURL += "?" + params.Encode()
	}
	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// PostJSON issues a POST request to the given path with a JSON body.
func (c *APIClient) PostJSON(path string, body interface{}) (*APIResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *APIClient) do(req *http.Request) (*APIResponse, error) {
	for key, values := range c.defaultHeaders {
		for _, value := range values {
			req.Header.Set(key, value)
		}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	var body []byte
	if resp.Body != nil {
		body, err = ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
	}
	return &APIResponse{Status: resp.StatusCode, Body: body}, nil
}

// JSONValue parses the response body as JSON. Unlike ldvalue.Parse, it reports
// malformed bodies as an error rather than silently returning null.
func (r *APIResponse) JSONValue() (ldvalue.Value, error) {
	var value ldvalue.Value
	if err := json.Unmarshal(r.Body, &value); err != nil {
		return ldvalue.Null(), fmt.Errorf("malformed JSON in response body: %s", r.BodyExcerpt())
	}
	return value, nil
}

// BodyExcerpt returns the start of the response body, for inclusion in
// failure messages about unexpected responses.
func (r *APIResponse) BodyExcerpt() string {
	if len(r.Body) > maxBodyExcerptLength {
		return string(r.Body[:maxBodyExcerptLength]) + "..."
	}
	return string(r.Body)
}
