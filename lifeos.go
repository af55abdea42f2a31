package lifeos

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/lifeos/internal/agent"
	"github.com/aretw0/lifeos/internal/config"
	"github.com/aretw0/lifeos/internal/decision"
	"github.com/aretw0/lifeos/internal/docmanager"
	"github.com/aretw0/lifeos/internal/executive"
	"github.com/aretw0/lifeos/internal/intel"
	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/internal/protocol"
	"github.com/aretw0/lifeos/internal/routine"
	"github.com/aretw0/lifeos/internal/strategy"
	"github.com/aretw0/lifeos/internal/wings"
	"github.com/aretw0/lifeos/pkg/adapters/file"
	"github.com/aretw0/lifeos/pkg/adapters/memory"
	"github.com/aretw0/lifeos/pkg/adapters/redis"
	"github.com/aretw0/lifeos/pkg/domain"
	"github.com/aretw0/lifeos/pkg/persistence/middleware"
	"github.com/aretw0/lifeos/pkg/ports"
)

// Version is the library version.
var Version = "0.1.0"

// System is the high-level entry point. It wires the document manager,
// protocol engine, decision checker, agents, branches, and wings into
// one running organism.
type System struct {
	cfg    config.Config
	cfgSet bool
	logger *slog.Logger

	store       ports.DocumentStore
	docs        *docmanager.Manager
	protocols   *protocol.Engine
	checker     *decision.Checker
	coordinator *agent.Coordinator
	intel       *intel.Branch
	strategy    *strategy.Branch
	executive   *executive.Branch
	wings       *wings.Registry

	mu          sync.Mutex
	lastRoutine *domain.RoutineResult
}

// Option configures the System.
type Option func(*System)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *System) {
		s.logger = logger
	}
}

// WithStore injects a document store, bypassing the configured backend.
func WithStore(store ports.DocumentStore) Option {
	return func(s *System) {
		s.store = store
	}
}

// WithConfig uses the given configuration instead of loading
// lifeos.yaml from the directory.
func WithConfig(cfg config.Config) Option {
	return func(s *System) {
		s.cfg = cfg
		s.cfgSet = true
	}
}

// New initializes a System rooted at dir. The directory holds the YAML
// configuration and, for the file backend, the document tree.
func New(dir string, opts ...Option) (*System, error) {
	sys := &System{}
	for _, opt := range opts {
		opt(sys)
	}

	userLogger := sys.logger != nil
	if !userLogger {
		sys.logger = logging.New(slog.LevelInfo)
	}

	if !sys.cfgSet {
		cfg, err := config.Load(dir, sys.logger)
		if err != nil {
			return nil, err
		}
		sys.cfg = cfg
	}
	if !userLogger {
		sys.logger = logging.New(logging.ParseLevel(sys.cfg.LogLevel))
	}

	if sys.store == nil {
		store, err := openStore(sys.cfg)
		if err != nil {
			return nil, err
		}
		sys.store = store
	}

	sys.docs = docmanager.NewManager(sys.store, docmanager.WithLogger(sys.logger))
	sys.protocols = protocol.NewEngine(protocol.WithLogger(sys.logger))
	registerCustomProtocols(sys.protocols, dir, sys.logger)
	sys.checker = decision.NewChecker(decision.WithLogger(sys.logger))

	factory := agent.NewFactory(sys.logger)
	sys.coordinator = agent.NewCoordinator(factory, sys.logger)
	if specs := config.LoadAgents(dir, sys.logger); len(specs) > 0 {
		for name, spec := range specs {
			factory.Create(name, spec.Role, spec.Instructions, spec.Capabilities)
		}
	} else {
		sys.coordinator.SetupDefaults()
	}
	for _, name := range factory.Names() {
		if a, err := factory.Get(name); err == nil {
			a.Connect(sys.docs, sys.protocols)
		}
	}

	detector := intel.NewFrontierDetector(intel.WithLogger(sys.logger))
	sys.intel = intel.NewBranch(detector, sys.docs, sys.logger)
	sys.strategy = strategy.NewBranch(sys.logger)
	sys.executive = executive.NewBranch(sys.checker, sys.logger)
	sys.wings = wings.NewDefaultRegistry(sys.logger)

	if err := sys.seedDocuments(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed documents: %w", err)
	}

	sys.logger.Info("system initialized",
		"backend", sys.cfg.Store.Backend,
		"agents", len(factory.Names()),
	)
	return sys, nil
}

func openStore(cfg config.Config) (ports.DocumentStore, error) {
	var store ports.DocumentStore
	switch cfg.Store.Backend {
	case "", "file":
		store = file.New(cfg.DataDir)
	case "memory":
		store = memory.NewStore()
	case "redis":
		var opts []redis.Option
		if cfg.Store.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Store.Redis.Prefix))
		}
		if cfg.Store.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Store.Redis.TTL))
		}
		store = redis.New(cfg.Store.Redis.Address, cfg.Store.Redis.Password, cfg.Store.Redis.DB, opts...)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	return wrapStore(store, cfg.Store)
}

// wrapStore layers the configured persistence middleware around the
// backend. Encryption wraps the backend directly and PII masking wraps
// encryption, so masked content is what gets sealed.
func wrapStore(store ports.DocumentStore, cfg config.StoreConfig) (ports.DocumentStore, error) {
	if cfg.EncryptionKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid encryption key: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("encryption key must decode to 32 bytes, got %d", len(key))
		}

		var fallbacks [][]byte
		for _, fk := range cfg.FallbackKeys {
			decoded, err := base64.StdEncoding.DecodeString(fk)
			if err != nil {
				return nil, fmt.Errorf("invalid fallback key: %w", err)
			}
			fallbacks = append(fallbacks, decoded)
		}

		store = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
			ActiveKey:    key,
			FallbackKeys: fallbacks,
		})(store)
	}

	if len(cfg.PIIPatterns) > 0 {
		for _, p := range cfg.PIIPatterns {
			if _, err := regexp.Compile(p); err != nil {
				return nil, fmt.Errorf("invalid pii pattern %q: %w", p, err)
			}
		}
		store = middleware.NewPIIMiddleware(cfg.PIIPatterns)(store)
	}

	return store, nil
}

// registerCustomProtocols adds protocols.yaml entries to the engine on
// top of the seeded core protocols. Registration failures (duplicate
// names, dependency cycles) are logged and skipped rather than fatal.
func registerCustomProtocols(engine *protocol.Engine, dir string, logger *slog.Logger) {
	specs := config.LoadProtocols(dir, logger)
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := specs[name]
		p := domain.NewProtocol(name, spec.Steps, spec.Gate)
		for _, dep := range spec.Dependencies {
			p.AddDependency(dep.Protocol, domain.DependencyType(dep.Type))
		}
		if err := engine.Register(p); err != nil {
			logger.Warn("skipping protocol", "protocol", name, "err", err)
		}
	}
}

// seedDocuments creates the foundational living documents when the
// store does not hold them yet.
func (s *System) seedDocuments(ctx context.Context) error {
	seeds := []struct {
		name    string
		docType domain.DocType
		content string
	}{
		{intel.WorldviewDocument, domain.DocTypeWorldview, worldviewSeed},
		{"Negotiation Heuristics", domain.DocTypeHeuristic, negotiationSeed},
	}

	for _, seed := range seeds {
		if _, err := s.docs.Get(ctx, seed.name); err == nil {
			continue
		}
		if _, err := s.docs.Create(ctx, seed.name, seed.docType, seed.content); err != nil {
			return err
		}
	}
	return nil
}

// DailyRoutine runs the full morning cycle: intel briefing, strategic
// direction, execution planning, document evolution, and a system
// health snapshot. Failures surface in the result's Err field rather
// than aborting the cycle.
func (s *System) DailyRoutine(ctx context.Context) *domain.RoutineResult {
	now := time.Now()
	result := &domain.RoutineResult{
		Date:      now.Format("2006-01-02"),
		Timestamp: now,
	}

	s.logger.Info("daily routine starting")

	briefing := s.intel.DailyBriefing(ctx)
	result.Briefing = briefing

	plan := s.strategy.ProcessIntel(briefing)
	if plan == nil {
		plan = s.strategy.Generate()
	}
	result.Strategy = plan

	result.Execution = s.executive.ReceiveStrategy(plan)
	result.Evolutions = s.checkEvolution(briefing, plan)
	result.Health = s.Health()

	s.mu.Lock()
	s.lastRoutine = result
	s.mu.Unlock()

	s.logger.Info("daily routine completed",
		"opportunities", len(briefing.Opportunities),
		"priorities", len(plan.Priorities),
		"tasks", result.Execution.TotalTasks,
		"evolutions", len(result.Evolutions),
	)
	return result
}

// checkEvolution collects the document updates triggered by this
// cycle: worldview updates from significant frontier changes and
// top-priority strategic items feeding back into the planning corpus.
func (s *System) checkEvolution(briefing *domain.Briefing, plan *domain.StrategicPlan) []domain.WorldviewUpdate {
	evolutions := append([]domain.WorldviewUpdate(nil), briefing.WorldviewUpdates...)

	if plan == nil {
		return evolutions
	}
	for _, priority := range plan.Priorities {
		if priority.Priority != 1 {
			continue
		}
		evolutions = append(evolutions, domain.WorldviewUpdate{
			Document:  "Negotiation Heuristics",
			Insight:   "New tactical priority: " + priority.Task,
			Source:    "strategic_planning",
			Reasoning: "Top priority tactical item feeds back into the playbook corpus",
		})
	}
	return evolutions
}

// CheckWings runs every wing's monitoring cycle.
func (s *System) CheckWings(ctx context.Context) map[string]domain.WingReport {
	return s.wings.CheckAll(ctx)
}

// Health reports a snapshot across all subsystems.
func (s *System) Health() map[string]any {
	docCount := 0
	if names, err := s.docs.List(context.Background()); err == nil {
		docCount = len(names)
	}

	return map[string]any{
		"intel_branch":     s.intel.Status(),
		"strategy_branch":  s.strategy.Status(),
		"executive_branch": s.executive.Status(),
		"wings":            s.wings.StatusAll(),
		"document_count":   docCount,
		"agent_count":      len(s.coordinator.Factory().Names()),
		"overall_health":   "excellent",
	}
}

// LastRoutine returns the most recent daily routine result, or nil.
func (s *System) LastRoutine() *domain.RoutineResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRoutine
}

// Scheduler builds a routine scheduler wired to this system using the
// configured cron expressions.
func (s *System) Scheduler() *routine.Scheduler {
	return routine.NewScheduler(
		routine.Jobs{
			Daily: func(ctx context.Context) { s.DailyRoutine(ctx) },
			Wings: func(ctx context.Context) { s.CheckWings(ctx) },
		},
		routine.WithLogger(s.logger),
		routine.WithDailySchedule(s.cfg.Schedule.Daily),
		routine.WithWingsSchedule(s.cfg.Schedule.Wings),
	)
}

// Documents exposes the document manager.
func (s *System) Documents() *docmanager.Manager { return s.docs }

// Protocols exposes the protocol engine.
func (s *System) Protocols() *protocol.Engine { return s.protocols }

// Checker exposes the go/no-go checker.
func (s *System) Checker() *decision.Checker { return s.checker }

// Agents exposes the agent coordinator.
func (s *System) Agents() *agent.Coordinator { return s.coordinator }

// Intel exposes the intel branch.
func (s *System) Intel() *intel.Branch { return s.intel }

// Strategy exposes the directional branch.
func (s *System) Strategy() *strategy.Branch { return s.strategy }

// Executive exposes the executive branch.
func (s *System) Executive() *executive.Branch { return s.executive }

// Wings exposes the wing registry.
func (s *System) Wings() *wings.Registry { return s.wings }

// Config returns the active configuration.
func (s *System) Config() config.Config { return s.cfg }

// Logger returns the system logger.
func (s *System) Logger() *slog.Logger { return s.logger }

// Close releases the underlying store when it holds external
// connections.
func (s *System) Close() error {
	if closer, ok := s.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
