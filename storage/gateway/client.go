// Package gateway implements the remote data-access contract against
// the school API gateway over HTTP/JSON. Every domain Gateway
// interface is satisfied by *Client.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(conf *core.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.GatewayBaseURL, "/"),
		http:    &http.Client{Timeout: conf.RequestTimeout},
	}
}

// APIError is a non-2xx response from the gateway.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: %s (HTTP %d)", e.Message, e.StatusCode)
}

func (c *Client) do(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "gateway: encoding request")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "gateway: building request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "gateway: %s %s", method, path)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusMultipleChoices {
		return decodeError(res)
	}
	if out != nil && res.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "gateway: decoding %s %s response", method, path)
		}
	}
	return nil
}

func decodeError(res *http.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else if payload.Message != "" {
			apiErr.Message = payload.Message
		}
	}
	return apiErr
}

func (c *Client) get(path string, out interface{}) error  { return c.do(http.MethodGet, path, nil, out) }
func (c *Client) post(path string, in, out interface{}) error {
	return c.do(http.MethodPost, path, in, out)
}
func (c *Client) put(path string, in, out interface{}) error {
	return c.do(http.MethodPut, path, in, out)
}
func (c *Client) delete(path string) error { return c.do(http.MethodDelete, path, nil, nil) }
