// Package order reconciles the presentation order of questionnaire
// scenarios against the order a user has already seen.
//
// A user's first order is persisted under a key derived from the catalog
// version and user ID. Later calls keep previously seen scenarios in their
// recorded relative order, drop scenarios that left the catalog and append
// new ones at the end in catalog order. The result is written back so
// repeated calls are stable.
//
// Storage is best-effort: unreadable or corrupt values are treated as absent
// and write failures are ignored. Resolve always returns an order.
//
// Writers are assumed to be single per key. Concurrent resolutions for the
// same user race on read-modify-write and the last write wins.
package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/louisbranch/careerpath/internal/services/onboarding/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultVersion is used when a request carries no catalog version.
const DefaultVersion = "v1"

const keyPrefix = "riasec_scenarios_order_"

// Source describes where a resolved order came from.
type Source string

const (
	// SourceReconciled means a persisted order was merged with current IDs.
	SourceReconciled Source = "reconciled"
	// SourceShuffled means the fallback generator produced the order.
	SourceShuffled Source = "shuffled"
	// SourceCatalog means current IDs were used in catalog order.
	SourceCatalog Source = "catalog"
)

// Storage is the persistence capability the resolver needs. GetItem returns
// storage.ErrNotFound for absent keys.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}

// ShuffleFunc produces a fallback order for seed. Its output is validated
// like persisted data before use.
type ShuffleFunc func(seed string) []string

// Request describes one resolution.
type Request struct {
	UID     string
	Version string
	// ScenarioIDs lists current scenario IDs in catalog order.
	ScenarioIDs []string
	// AllowShuffle enables Shuffled when no usable prior order exists.
	AllowShuffle bool
	Seed         string
	Shuffled     ShuffleFunc
}

// Result is a resolved order and how it was derived.
type Result struct {
	Order  []string
	Source Source
	// Persisted reports whether the order was written back to storage.
	Persisted bool
}

// StorageKey returns the key an order is persisted under.
func StorageKey(uid, version string) string {
	if version == "" {
		version = DefaultVersion
	}
	return keyPrefix + version + "_" + uid
}

// ParseOrder decodes a persisted order. The value is usable only if it is a
// JSON array of non-empty strings; anything else is rejected as a whole.
func ParseOrder(raw string) ([]string, bool) {
	var values []any
	if err := json.Unmarshal([]byte(raw), &values); err != nil || values == nil {
		return nil, false
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok || s == "" {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// ValidOrder applies ParseOrder's element rules to an in-memory order.
func ValidOrder(ids []string) ([]string, bool) {
	if ids == nil {
		return nil, false
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, false
		}
		out = append(out, id)
	}
	return out, true
}

// Reconcile merges prior with current. It reports false when prior shares no
// ID with current. Otherwise the result is prior filtered to current IDs,
// followed by current IDs missing from it in current order.
func Reconcile(prior, current []string) ([]string, bool) {
	inCurrent := make(map[string]struct{}, len(current))
	for _, id := range current {
		inCurrent[id] = struct{}{}
	}

	kept := make([]string, 0, len(current))
	inKept := make(map[string]struct{}, len(prior))
	for _, id := range prior {
		if _, ok := inCurrent[id]; ok {
			kept = append(kept, id)
			inKept[id] = struct{}{}
		}
	}
	if len(kept) == 0 {
		return nil, false
	}

	out := kept
	for _, id := range current {
		if _, ok := inKept[id]; !ok {
			out = append(out, id)
		}
	}
	return out, true
}

// Resolver resolves and persists scenario orders.
type Resolver struct {
	store  Storage
	logger *zap.Logger
	tracer trace.Tracer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for swallowed storage failures.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer overrides the global tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Resolver) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

// NewResolver returns a resolver backed by store. A nil store disables
// persistence: nothing is read and nothing is written.
func NewResolver(store Storage, opts ...Option) *Resolver {
	r := &Resolver{
		store:  store,
		logger: zap.NewNop(),
		tracer: otel.Tracer("github.com/louisbranch/careerpath/internal/services/onboarding/order"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the order to present for req.
func (r *Resolver) Resolve(ctx context.Context, req Request) []string {
	return r.ResolveDetailed(ctx, req).Order
}

// ResolveDetailed is Resolve with provenance. The storage read completes
// before the order is computed and the write happens after.
func (r *Resolver) ResolveDetailed(ctx context.Context, req Request) Result {
	ctx, span := r.tracer.Start(ctx, "order.Resolve")
	defer span.End()

	ids := make([]string, len(req.ScenarioIDs))
	copy(ids, req.ScenarioIDs)
	key := StorageKey(req.UID, req.Version)
	logger := r.logger.With(zap.String("key", key))

	var result Result
	if prior, ok := r.load(ctx, logger, key); ok {
		if merged, ok := Reconcile(prior, ids); ok {
			result = Result{Order: merged, Source: SourceReconciled}
		}
	}
	if result.Order == nil && req.AllowShuffle && req.Shuffled != nil {
		if shuffled, ok := ValidOrder(req.Shuffled(req.Seed)); ok && len(shuffled) > 0 {
			result = Result{Order: shuffled, Source: SourceShuffled}
		} else {
			logger.Debug("ignoring invalid shuffled order", zap.String("seed", req.Seed))
		}
	}
	if result.Order == nil {
		result = Result{Order: ids, Source: SourceCatalog}
	}

	result.Persisted = r.save(ctx, logger, key, result.Order)
	span.SetAttributes(
		attribute.String("order.source", string(result.Source)),
		attribute.Int("order.size", len(result.Order)),
		attribute.Bool("order.persisted", result.Persisted),
	)
	return result
}

func (r *Resolver) load(ctx context.Context, logger *zap.Logger, key string) ([]string, bool) {
	if r.store == nil {
		return nil, false
	}
	raw, err := r.store.GetItem(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Debug("read persisted order", zap.Error(err))
		}
		return nil, false
	}
	prior, ok := ParseOrder(raw)
	if !ok {
		logger.Debug("discarding corrupt persisted order")
		return nil, false
	}
	return prior, true
}

func (r *Resolver) save(ctx context.Context, logger *zap.Logger, key string, order []string) bool {
	if r.store == nil {
		return false
	}
	payload, err := json.Marshal(order)
	if err != nil {
		logger.Debug("encode order", zap.Error(err))
		return false
	}
	if err := r.store.SetItem(ctx, key, string(payload)); err != nil {
		logger.Debug("persist order", zap.Error(err))
		return false
	}
	return true
}
