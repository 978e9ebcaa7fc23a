package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/icholy/digest"
)

// HTTP sends requests with net/http, authenticating every request with HTTP
// digest auth the way the Infinispan server expects.
type HTTP struct {
	client *http.Client
}

var _ Transport = (*HTTP)(nil)

type Config struct {
	Username string
	Password string

	// Base is the underlying round tripper. Defaults to
	// http.DefaultTransport; digest auth is layered on top of it.
	Base http.RoundTripper
}

func NewHTTP(cfg Config) *HTTP {
	return &HTTP{
		client: &http.Client{
			Transport: &digest.Transport{
				Username:  cfg.Username,
				Password:  cfg.Password,
				Transport: cfg.Base,
			},
		},
	}
}

func (t *HTTP) Send(ctx context.Context, method, url string, body []byte, headers map[string]string, timeout time.Duration) (*Response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, &Error{Method: method, URL: url, Err: err}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &Error{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Method: method, URL: url, Err: err}
	}
	return &Response{StatusCode: resp.StatusCode, Body: string(b)}, nil
}
