package ispncache

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/Vijay2351989/ispncache/config"
	"github.com/Vijay2351989/ispncache/transport"
)

var errConfigRequired = errors.New("ispncache: config with host and port is required")

var (
	jsonHeaders  = map[string]string{"Content-Type": "application/json"}
	plainHeaders = map[string]string{"Content-Type": "text/plain"}
)

// core carries the plumbing shared by the provisioner, the schema manager and
// the data client: resolved config, transport, retry policy and sinks.
type core struct {
	cfg     config.Config
	baseURL string
	tr      transport.Transport
	log     Logger
	hooks   Hooks
	retry   RetryPolicy

	// injectable for tests; sleepCtx otherwise
	sleep func(context.Context, time.Duration) error
}

func newCore(opts Options) (*core, error) {
	if opts.Config.Host == "" || opts.Config.Port == 0 {
		return nil, errConfigRequired
	}
	retry := DefaultRetryPolicy()
	if opts.Retry != nil {
		retry = *opts.Retry
	}
	if err := retry.validate(); err != nil {
		return nil, err
	}

	c := &core{
		cfg:     opts.Config,
		baseURL: opts.Config.RESTBaseURL(),
		retry:   retry,
		sleep:   sleepCtx,
	}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	if opts.Transport != nil {
		c.tr = opts.Transport
	} else {
		c.tr = transport.NewHTTP(transport.Config{
			Username: opts.Config.Username,
			Password: opts.Config.Password,
		})
	}
	return c, nil
}

func (c *core) cacheURL(name string) string {
	return c.baseURL + "/caches/" + url.PathEscape(name)
}

func (c *core) entryURL(name, key string) string {
	return c.cacheURL(name) + "/" + url.PathEscape(key)
}

func (c *core) schemaURL(name string) string {
	return c.baseURL + "/schemas/" + url.PathEscape(name)
}
