package ispncache

import (
	c "github.com/Vijay2351989/ispncache/codec"
	"github.com/Vijay2351989/ispncache/config"
	"github.com/Vijay2351989/ispncache/transport"
)

// Options tune the client. Only Config is required; others have sensible
// defaults.
type Options struct {
	// Required. Resolved connection settings and cache definitions,
	// usually produced by config.Loader.
	Config config.Config

	Transport transport.Transport // nil => digest-authed net/http sender
	Logger    Logger              // nil => NopLogger
	Hooks     Hooks               // nil => NopHooks
	Codec     c.Codec[any]        // inner payload codec; nil => codec.JSON[any]
	Retry     *RetryPolicy        // nil => DefaultRetryPolicy()

	// MaxDecodeBytes caps the inner payload size accepted on reads.
	// 0 disables the limit.
	MaxDecodeBytes int
}

// NewClient builds the put/get/delete data client. It provisions missing
// caches on writes through an embedded Provisioner.
func NewClient(opts Options) (*Client, error) {
	core, err := newCore(opts)
	if err != nil {
		return nil, err
	}

	cod := opts.Codec
	if cod == nil {
		cod = c.JSON[any]{}
	}
	if opts.MaxDecodeBytes > 0 {
		cod = c.Limit[any]{Inner: cod, MaxDecode: opts.MaxDecodeBytes}
	}

	return &Client{
		core:  core,
		codec: cod,
		prov:  &Provisioner{core: core},
	}, nil
}

// NewProvisioner builds a standalone cache provisioner, for callers that only
// bootstrap caches and never touch data.
func NewProvisioner(opts Options) (*Provisioner, error) {
	core, err := newCore(opts)
	if err != nil {
		return nil, err
	}
	return &Provisioner{core: core}, nil
}

// NewSchemaManager builds the Protobuf schema registrar.
func NewSchemaManager(opts Options) (*SchemaManager, error) {
	core, err := newCore(opts)
	if err != nil {
		return nil, err
	}
	return &SchemaManager{core: core}, nil
}
