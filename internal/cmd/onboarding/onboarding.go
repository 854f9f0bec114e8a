// Package onboarding implements the onboarding command: it builds RIASEC
// questionnaires, resolves persisted scenario orders and manages onboarding
// status markers against a local SQLite store.
package onboarding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/louisbranch/careerpath/internal/platform/config"
	"github.com/louisbranch/careerpath/internal/platform/logging"
	"github.com/louisbranch/careerpath/internal/services/onboarding/app"
	"github.com/louisbranch/careerpath/internal/services/onboarding/riasec"
	"github.com/louisbranch/careerpath/internal/services/onboarding/status"
	"github.com/louisbranch/careerpath/internal/services/onboarding/storage"
	"github.com/louisbranch/careerpath/internal/services/onboarding/storage/memory"
	onboardingsqlite "github.com/louisbranch/careerpath/internal/services/onboarding/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Config holds onboarding command configuration.
type Config struct {
	DBPath         string        `env:"CAREERPATH_ONBOARDING_DB_PATH" envDefault:"data/onboarding.db"`
	CatalogVersion string        `env:"CAREERPATH_RIASEC_VERSION"     envDefault:"v1"`
	AllowShuffle   bool          `env:"CAREERPATH_RIASEC_SHUFFLE"     envDefault:"true"`
	CatalogPath    string        `env:"CAREERPATH_RIASEC_CATALOG"`
	StatusTTL      time.Duration `env:"CAREERPATH_STATUS_TTL"         envDefault:"60s"`
	Verbose        bool          `env:"CAREERPATH_VERBOSE"`
	// InMemory skips SQLite and keeps state for the current process only.
	InMemory bool `env:"CAREERPATH_ONBOARDING_IN_MEMORY"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type runtime struct {
	cfg    Config
	out    io.Writer
	in     io.Reader
	logger *zap.Logger
	store  storage.Store
	close  func() error
}

// NewRootCommand builds the command tree. Flags override cfg.
func NewRootCommand(cfg Config, in io.Reader, out, errOut io.Writer) *cobra.Command {
	root, _ := newRoot(cfg, in, out, errOut)
	return root
}

func newRoot(cfg Config, in io.Reader, out, errOut io.Writer) (*cobra.Command, *runtime) {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	rt := &runtime{cfg: cfg, out: out, in: in}

	root := &cobra.Command{
		Use:           "onboarding",
		Short:         "Build and order RIASEC onboarding questionnaires",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			rt.logger = logging.NewWriter(errOut, rt.cfg.Verbose)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&rt.cfg.DBPath, "db", rt.cfg.DBPath, "path to the onboarding SQLite database")
	flags.StringVar(&rt.cfg.CatalogVersion, "catalog-version", rt.cfg.CatalogVersion, "version namespacing persisted orders")
	flags.StringVar(&rt.cfg.CatalogPath, "catalog", rt.cfg.CatalogPath, "optional YAML scenario catalog")
	flags.BoolVar(&rt.cfg.AllowShuffle, "shuffle", rt.cfg.AllowShuffle, "allow a seeded shuffle for a user's first order")
	flags.BoolVar(&rt.cfg.InMemory, "in-memory", rt.cfg.InMemory, "keep state in memory instead of SQLite")
	flags.BoolVarP(&rt.cfg.Verbose, "verbose", "v", rt.cfg.Verbose, "enable debug logging")

	root.AddCommand(
		newBuildCommand(rt),
		newScenariosCommand(rt),
		newOrderCommand(rt),
		newScoreCommand(rt),
		newStatusCommand(rt),
	)
	return root, rt
}

// Run executes the onboarding command with args.
func Run(ctx context.Context, cfg Config, args []string, in io.Reader, out, errOut io.Writer) error {
	root, rt := newRoot(cfg, in, out, errOut)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if closeErr := rt.shutdown(); err == nil {
		err = closeErr
	}
	return err
}

func (rt *runtime) shutdown() error {
	if rt.close == nil {
		return nil
	}
	closeFn := rt.close
	rt.close = nil
	rt.store = nil
	if err := closeFn(); err != nil {
		return fmt.Errorf("close onboarding store: %w", err)
	}
	return nil
}

func (rt *runtime) catalog() ([]riasec.Template, error) {
	if strings.TrimSpace(rt.cfg.CatalogPath) == "" {
		return riasec.DefaultCatalog(), nil
	}
	return riasec.LoadCatalogFile(rt.cfg.CatalogPath)
}

func (rt *runtime) openStore(ctx context.Context) (storage.Store, error) {
	if rt.store != nil {
		return rt.store, nil
	}
	if rt.cfg.InMemory {
		rt.store = memory.New()
		return rt.store, nil
	}
	store, err := onboardingsqlite.Open(ctx, rt.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open onboarding store: %w", err)
	}
	rt.store = store
	rt.close = store.Close
	return store, nil
}

func (rt *runtime) questionnaire(ctx context.Context) (*app.Questionnaire, error) {
	catalog, err := rt.catalog()
	if err != nil {
		return nil, err
	}
	store, err := rt.openStore(ctx)
	if err != nil {
		return nil, err
	}
	return app.NewQuestionnaire(store, app.Config{
		Version:      rt.cfg.CatalogVersion,
		AllowShuffle: rt.cfg.AllowShuffle,
		Catalog:      catalog,
		Logger:       rt.logger,
	}), nil
}

func (rt *runtime) writeJSON(v any) error {
	enc := json.NewEncoder(rt.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func requireUID(uid string) (string, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return "", errors.New("uid is required")
	}
	return uid, nil
}

func newBuildCommand(rt *runtime) *cobra.Command {
	var seed string
	var shuffleScenarios bool
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Print scenarios built for a seed",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			catalog, err := rt.catalog()
			if err != nil {
				return err
			}
			return rt.writeJSON(riasec.BuildFrom(catalog, seed, shuffleScenarios))
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "shuffle seed, usually a user id")
	cmd.Flags().BoolVar(&shuffleScenarios, "shuffle-scenarios", false, "shuffle scenario order as well as options")
	return cmd
}

func newScenariosCommand(rt *runtime) *cobra.Command {
	var uid string
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Resolve and print a user's questionnaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := requireUID(uid)
			if err != nil {
				return err
			}
			q, err := rt.questionnaire(cmd.Context())
			if err != nil {
				return err
			}
			return rt.writeJSON(q.Present(cmd.Context(), id))
		},
	}
	cmd.Flags().StringVar(&uid, "uid", "", "user id")
	return cmd
}

func newOrderCommand(rt *runtime) *cobra.Command {
	var uid string
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print a user's persisted scenario order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := requireUID(uid)
			if err != nil {
				return err
			}
			q, err := rt.questionnaire(cmd.Context())
			if err != nil {
				return err
			}
			ids, err := q.Order(cmd.Context(), id)
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("no persisted order for %s", id)
			}
			if err != nil {
				return err
			}
			return rt.writeJSON(ids)
		},
	}
	cmd.PersistentFlags().StringVar(&uid, "uid", "", "user id")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete a user's persisted scenario order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := requireUID(uid)
			if err != nil {
				return err
			}
			q, err := rt.questionnaire(cmd.Context())
			if err != nil {
				return err
			}
			if err := q.Reset(cmd.Context(), id); err != nil {
				return err
			}
			rt.logger.Info("order reset", zap.String("uid", id), zap.String("version", rt.cfg.CatalogVersion))
			return nil
		},
	}
	cmd.AddCommand(reset)
	return cmd
}

type scoreOutput struct {
	UID         string         `json:"uid"`
	Answers     riasec.Answers `json:"answers"`
	Totals      riasec.Scores  `json:"totals"`
	HollandCode string         `json:"holland_code"`
}

func newScoreCommand(rt *runtime) *cobra.Command {
	var uid, answersPath string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score selections (JSON object of scenario id to option id)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := requireUID(uid)
			if err != nil {
				return err
			}
			selections, err := rt.readSelections(answersPath)
			if err != nil {
				return err
			}
			catalog, err := rt.catalog()
			if err != nil {
				return err
			}
			answers, err := app.NewQuestionnaire(nil, app.Config{Catalog: catalog}).Score(id, selections)
			if err != nil {
				return err
			}
			return rt.writeJSON(scoreOutput{
				UID:         id,
				Answers:     answers,
				Totals:      answers.Totals(),
				HollandCode: answers.HollandCode(3),
			})
		},
	}
	cmd.Flags().StringVar(&uid, "uid", "", "user id the options were shuffled for")
	cmd.Flags().StringVar(&answersPath, "answers", "-", "selections file, or - for stdin")
	return cmd
}

func (rt *runtime) readSelections(path string) (map[string]string, error) {
	var r io.Reader = rt.in
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open answers: %w", err)
		}
		defer f.Close()
		r = f
	}
	var selections map[string]string
	if err := json.NewDecoder(r).Decode(&selections); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return selections, nil
}

// offlineFetcher stands in for the onboarding backend, which this command
// does not reach; unknown users report an empty status.
type offlineFetcher struct{}

func (offlineFetcher) OnboardingStatus(context.Context, string) (string, error) {
	return "", nil
}

func (rt *runtime) statusCache(ctx context.Context) (*status.Cache, error) {
	store, err := rt.openStore(ctx)
	if err != nil {
		return nil, err
	}
	return status.New(store, offlineFetcher{}, status.Config{
		MaxAge: rt.cfg.StatusTTL,
		Logger: rt.logger,
	})
}

func newStatusCommand(rt *runtime) *cobra.Command {
	var uid string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print a user's cached onboarding status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := requireUID(uid)
			if err != nil {
				return err
			}
			cache, err := rt.statusCache(cmd.Context())
			if err != nil {
				return err
			}
			value, err := cache.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return rt.writeJSON(map[string]string{"uid": id, "status": value})
		},
	}
	cmd.PersistentFlags().StringVar(&uid, "uid", "", "user id")

	var value string
	set := &cobra.Command{
		Use:   "set",
		Short: "Record a user's onboarding status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := requireUID(uid)
			if err != nil {
				return err
			}
			cache, err := rt.statusCache(cmd.Context())
			if err != nil {
				return err
			}
			cache.Set(cmd.Context(), id, strings.TrimSpace(value))
			return nil
		},
	}
	set.Flags().StringVar(&value, "status", status.Complete, "status value")

	invalidate := &cobra.Command{
		Use:   "invalidate",
		Short: "Forget a user's onboarding status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cache, err := rt.statusCache(cmd.Context())
			if err != nil {
				return err
			}
			cache.Invalidate(cmd.Context(), strings.TrimSpace(uid))
			return nil
		},
	}
	cmd.AddCommand(set, invalidate)
	return cmd
}
