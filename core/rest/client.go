package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/op/go-logging"
)

// Client talks to the backend REST API. The backend owns all persistence
// and moderation; this side only issues requests and decodes state.
type Client struct {
	base string
	http *http.Client
	log  *logging.Logger
}

func New(base string, log *logging.Logger) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: http.DefaultClient,
		log:  log,
	}
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body, decoding the response
// into out when out is not nil.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	url := c.base + path

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request for %s: %v", url, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debugf("%s %s", method, url)
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Errorf("request to %s failed: %v", url, err)
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		ioutil.ReadAll(res.Body)
		err := &RequestError{URL: url, Status: res.StatusCode}
		c.log.Error(err.Error())
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		c.log.Errorf("could not decode response from %s: %v", url, err)
		return err
	}

	return nil
}
