package ispncache

import (
	"github.com/Vijay2351989/ispncache/config"
)

// The server cache definition mirrors the JSON document the Infinispan REST
// API expects for a distributed cache. Field names follow the server schema,
// not Go conventions.

type cacheDefinition struct {
	DistributedCache distributedCache `json:"distributed-cache"`
}

type distributedCache struct {
	Mode              string       `json:"mode"`
	Owners            int          `json:"owners"`
	Statistics        bool         `json:"statistics"`
	L1Lifespan        int64        `json:"l1-lifespan"`
	L1CleanupInterval int64        `json:"l1-cleanup-interval"`
	Locking           locking      `json:"locking"`
	Transaction       transaction  `json:"transaction"`
	Memory            memory       `json:"memory"`
	Expiration        expiration   `json:"expiration"`
	Encoding          encoding     `json:"encoding"`
	Persistence       *persistence `json:"persistence,omitempty"`
}

type locking struct {
	Isolation      string `json:"isolation"`
	AcquireTimeout int64  `json:"acquire-timeout"`
}

// The transaction block exists because the wire schema requires it, not
// because transactions are used.
type transaction struct {
	Mode       string `json:"mode"`
	AutoCommit bool   `json:"auto-commit"`
	Locking    string `json:"locking"`
}

type memory struct {
	MaxSize  string `json:"max-size"`
	WhenFull string `json:"when-full"`
	Storage  string `json:"storage"`
}

type expiration struct {
	Lifespan int64 `json:"lifespan"`
}

type encoding struct {
	Key   mediaType `json:"key"`
	Value mediaType `json:"value"`
}

type mediaType struct {
	MediaType string `json:"media-type"`
}

type persistence struct {
	Passivation bool      `json:"passivation"`
	FileStore   fileStore `json:"file-store"`
}

type fileStore struct {
	Shared      bool         `json:"shared"`
	Data        storePath    `json:"data"`
	Index       storePath    `json:"index"`
	WriteBehind *writeBehind `json:"write-behind,omitempty"`
}

type storePath struct {
	Path string `json:"path"`
}

type writeBehind struct {
	ModificationQueueSize int  `json:"modification-queue-size"`
	FailSilently          bool `json:"fail-silently"`
}

const (
	mediaProtoStream   = "application/x-protostream"
	defaultMemorySize  = "50MB"
	defaultTTLHours    = 2
	defaultL1Millis    = 30 * 60 * 1000
	lockAcquireTimeout = 30_000
)

// buildDefinition derives the server cache definition deterministically from
// the settings: synchronous distributed mode with one owner, ProtoStream
// encoding on both sides, heap-backed memory bound with remove-on-full
// eviction, and an optional file-store persistence block.
func (p *Provisioner) buildDefinition(name string, s config.CacheSettings) cacheDefinition {
	return cacheDefinition{
		DistributedCache: distributedCache{
			Mode:              "SYNC",
			Owners:            1,
			Statistics:        true,
			L1Lifespan:        l1ExpirationMS(s),
			L1CleanupInterval: l1ExpirationMS(s),
			Locking: locking{
				Isolation:      "READ_COMMITTED",
				AcquireTimeout: lockAcquireTimeout,
			},
			Transaction: transaction{
				Mode:       "NONE",
				AutoCommit: true,
				Locking:    "OPTIMISTIC",
			},
			Memory: memory{
				MaxSize:  coalesce(s.MemorySize, defaultMemorySize),
				WhenFull: "REMOVE",
				Storage:  "HEAP",
			},
			Expiration: expiration{
				Lifespan: int64(coalesce(s.TTLHours, defaultTTLHours)) * 60 * 60 * 1000,
			},
			Encoding: encoding{
				Key:   mediaType{MediaType: mediaProtoStream},
				Value: mediaType{MediaType: mediaProtoStream},
			},
			Persistence: p.buildPersistence(name, s.Persistence),
		},
	}
}

// buildPersistence returns nil when persistence is disabled or the type is
// unsupported; an unsupported type is a logged warning, not an error.
// Data and index paths live under the configured base path, which the server
// resolves relative to its global persistent location.
func (p *Provisioner) buildPersistence(name string, ps *config.Persistence) *persistence {
	if ps == nil || !ps.Enabled {
		return nil
	}
	storeType := coalesce(ps.Type, "file-store")
	if storeType != "file-store" {
		p.core.log.Warn("unsupported persistence type, persistence disabled", Fields{
			"cache": name, "type": storeType,
		})
		return nil
	}

	base := coalesce(ps.Path, "caches")
	fs := fileStore{
		Shared: ps.Shared,
		Data:   storePath{Path: base + "/data"},
		Index:  storePath{Path: base + "/index"},
	}
	if wb := ps.WriteBehind; wb != nil && wb.Enabled {
		fs.WriteBehind = &writeBehind{
			ModificationQueueSize: coalesce(wb.ModificationQueueSize, 2048),
			FailSilently:          wb.FailSilently,
		}
	}
	return &persistence{
		Passivation: ps.Passivation,
		FileStore:   fs,
	}
}

// l1ExpirationMS resolves the L1 expiration: minutes win over hours, with a
// 30 minute default when neither is set.
func l1ExpirationMS(s config.CacheSettings) int64 {
	if s.L1ExpirationMinutes != nil {
		return int64(*s.L1ExpirationMinutes) * 60 * 1000
	}
	if s.L1ExpirationHours != nil {
		return int64(*s.L1ExpirationHours) * 60 * 60 * 1000
	}
	return defaultL1Millis
}
