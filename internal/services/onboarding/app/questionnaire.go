// Package app composes the onboarding questionnaire from the scenario
// builder and the order resolver.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/careerpath/internal/services/onboarding/order"
	"github.com/louisbranch/careerpath/internal/services/onboarding/riasec"
	"github.com/louisbranch/careerpath/internal/services/onboarding/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/louisbranch/careerpath/internal/services/onboarding/app")

// Config controls questionnaire assembly.
type Config struct {
	// Version namespaces persisted orders; bump it to reset every user.
	Version string
	// AllowShuffle lets a user's first order be a seeded shuffle instead of
	// catalog order.
	AllowShuffle bool
	// Catalog replaces the built-in scenarios when non-empty.
	Catalog []riasec.Template
	Logger  *zap.Logger
}

// Questionnaire builds per-user scenario lists with a stable order.
type Questionnaire struct {
	store    storage.Store
	resolver *order.Resolver
	catalog  []riasec.Template
	version  string
	shuffle  bool
	logger   *zap.Logger
}

// Presentation is a resolved questionnaire for one user.
type Presentation struct {
	UID       string            `json:"uid"`
	Version   string            `json:"version"`
	Source    order.Source      `json:"source"`
	Persisted bool              `json:"persisted"`
	Scenarios []riasec.Scenario `json:"scenarios"`
}

// NewQuestionnaire returns a questionnaire persisting orders in store. A nil
// store disables persistence.
func NewQuestionnaire(store storage.Store, cfg Config) *Questionnaire {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	version := cfg.Version
	if version == "" {
		version = order.DefaultVersion
	}
	catalog := cfg.Catalog
	if len(catalog) == 0 {
		catalog = riasec.DefaultCatalog()
	}

	var orderStore order.Storage
	if store != nil {
		orderStore = store
	}
	return &Questionnaire{
		store:    store,
		resolver: order.NewResolver(orderStore, order.WithLogger(logger)),
		catalog:  catalog,
		version:  version,
		shuffle:  cfg.AllowShuffle,
		logger:   logger,
	}
}

// Scenarios returns uid's scenarios in their resolved order. Options are
// shuffled with uid as the seed.
func (q *Questionnaire) Scenarios(ctx context.Context, uid string) []riasec.Scenario {
	return q.Present(ctx, uid).Scenarios
}

// Present resolves uid's questionnaire along with its order provenance.
func (q *Questionnaire) Present(ctx context.Context, uid string) Presentation {
	ctx, span := tracer.Start(ctx, "questionnaire.Present")
	defer span.End()

	scenarios := riasec.BuildFrom(q.catalog, uid, false)
	result := q.resolver.ResolveDetailed(ctx, order.Request{
		UID:          uid,
		Version:      q.version,
		ScenarioIDs:  riasec.IDs(scenarios),
		AllowShuffle: q.shuffle,
		Seed:         uid,
		Shuffled: func(seed string) []string {
			return riasec.IDs(riasec.BuildFrom(q.catalog, seed, true))
		},
	})
	span.SetAttributes(attribute.String("questionnaire.version", q.version))
	q.logger.Debug("resolved questionnaire",
		zap.String("uid", uid),
		zap.String("source", string(result.Source)),
		zap.Int("scenarios", len(result.Order)),
	)

	return Presentation{
		UID:       uid,
		Version:   q.version,
		Source:    result.Source,
		Persisted: result.Persisted,
		Scenarios: riasec.Arrange(scenarios, result.Order),
	}
}

// Order returns uid's persisted order without resolving a new one.
func (q *Questionnaire) Order(ctx context.Context, uid string) ([]string, error) {
	if q.store == nil {
		return nil, storage.ErrNotFound
	}
	raw, err := q.store.GetItem(ctx, order.StorageKey(uid, q.version))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	ids, ok := order.ParseOrder(raw)
	if !ok {
		return nil, fmt.Errorf("stored order for %s is corrupt", uid)
	}
	return ids, nil
}

// Reset deletes uid's persisted order so the next resolution starts over.
func (q *Questionnaire) Reset(ctx context.Context, uid string) error {
	if q.store == nil {
		return nil
	}
	if err := q.store.DeleteItem(ctx, order.StorageKey(uid, q.version)); err != nil {
		return fmt.Errorf("reset order: %w", err)
	}
	return nil
}

// Score tallies selections against uid's scenarios.
func (q *Questionnaire) Score(uid string, selections map[string]string) (riasec.Answers, error) {
	return riasec.Tally(riasec.BuildFrom(q.catalog, uid, false), selections)
}
