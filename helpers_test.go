package ispncache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Vijay2351989/ispncache/config"
	"github.com/Vijay2351989/ispncache/transport"
)

type call struct {
	method  string
	url     string
	body    string
	timeout time.Duration
}

// fakeTransport records every request and answers through a handler.
type fakeTransport struct {
	mu      sync.Mutex
	calls   []call
	handler func(method, url string, body []byte) (*transport.Response, error)
}

var _ transport.Transport = (*fakeTransport)(nil)

func (f *fakeTransport) Send(_ context.Context, method, url string, body []byte, _ map[string]string, timeout time.Duration) (*transport.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{method: method, url: url, body: string(body), timeout: timeout})
	f.mu.Unlock()
	return f.handler(method, url, body)
}

func (f *fakeTransport) callsFor(method string) []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []call
	for _, c := range f.calls {
		if c.method == method {
			out = append(out, c)
		}
	}
	return out
}

func respond(status int, body string) (*transport.Response, error) {
	return &transport.Response{StatusCode: status, Body: body}, nil
}

func transportErr(method, url string) (*transport.Response, error) {
	return nil, &transport.Error{Method: method, URL: url, Err: context.DeadlineExceeded}
}

// recordHooks captures hook invocations for assertions.
type recordHooks struct {
	NopHooks
	mu               sync.Mutex
	retries          int
	exhausted        int
	existsFailures   []string
	provisionFailed  []string
	decodeFallbacks  []string
	schemaFailures   []string
}

func (h *recordHooks) RetryScheduled(string, string, int, time.Duration) {
	h.mu.Lock()
	h.retries++
	h.mu.Unlock()
}

func (h *recordHooks) RetriesExhausted(string, string, int, error) {
	h.mu.Lock()
	h.exhausted++
	h.mu.Unlock()
}

func (h *recordHooks) ExistsCheckFailed(cache string, _ error) {
	h.mu.Lock()
	h.existsFailures = append(h.existsFailures, cache)
	h.mu.Unlock()
}

func (h *recordHooks) ProvisionFailed(cache string, _ error) {
	h.mu.Lock()
	h.provisionFailed = append(h.provisionFailed, cache)
	h.mu.Unlock()
}

func (h *recordHooks) DecodeFallback(_, _, reason string) {
	h.mu.Lock()
	h.decodeFallbacks = append(h.decodeFallbacks, reason)
	h.mu.Unlock()
}

func (h *recordHooks) SchemaRegistrationFailed(schema string, _ error) {
	h.mu.Lock()
	h.schemaFailures = append(h.schemaFailures, schema)
	h.mu.Unlock()
}

func intp(i int) *int { return &i }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Caches = map[string]config.CacheSettings{
		"c": {
			Enabled:             true,
			MemorySize:          "50MB",
			TTLHours:            2,
			L1ExpirationMinutes: intp(30),
		},
	}
	return cfg
}

// instantSleep swaps real backoff sleeps for a recorder.
func instantSleep(c *core) *[]time.Duration {
	var delays []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return &delays
}

func newTestClient(t *testing.T, ft *fakeTransport, optsFn func(*Options)) (*Client, *recordHooks) {
	t.Helper()
	hooks := &recordHooks{}
	opts := Options{
		Config:    testConfig(),
		Transport: ft,
		Hooks:     hooks,
	}
	if optsFn != nil {
		optsFn(&opts)
	}
	cl, err := NewClient(opts)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	instantSleep(cl.core)
	return cl, hooks
}

func newTestProvisioner(t *testing.T, ft *fakeTransport) (*Provisioner, *recordHooks, *[]time.Duration) {
	t.Helper()
	hooks := &recordHooks{}
	p, err := NewProvisioner(Options{
		Config:    testConfig(),
		Transport: ft,
		Hooks:     hooks,
	})
	if err != nil {
		t.Fatalf("NewProvisioner: %v", err)
	}
	delays := instantSleep(p.core)
	return p, hooks, delays
}
