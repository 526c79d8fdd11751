// Package service provides the portfolio service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/cannondawg34/portfolio/internal/adapters/prefstore"
	"github.com/cannondawg34/portfolio/internal/adapters/repository"
	"github.com/cannondawg34/portfolio/internal/domain/catalog"
	"github.com/cannondawg34/portfolio/internal/domain/memo"
	"github.com/cannondawg34/portfolio/internal/domain/model"
	"github.com/cannondawg34/portfolio/internal/domain/navigation"
	"github.com/cannondawg34/portfolio/internal/domain/theme"
	"github.com/cannondawg34/portfolio/internal/domain/types"
	"github.com/cannondawg34/portfolio/pkg/logger"
	"github.com/cannondawg34/portfolio/pkg/metrics"
)

// ErrNotStarted is returned by catalog operations before Start.
var ErrNotStarted = errors.New("service not started")

// Filter kinds reported to metrics.
const (
	filterKindAll        = "all"
	filterKindRestricted = "restricted"
)

// counter is implemented by theme stores that can report their size.
type counter interface {
	Len(ctx context.Context) (int, error)
}

// Service implements the API dependencies for the portfolio site.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	prefs      theme.Store
	preference *theme.Preference
	results    *memo.Cache[[]catalog.Record]
	facets     catalog.FacetIndex
	resolver   *navigation.Resolver

	// Configuration
	catalogPath  string
	defaultTheme theme.Theme
	memoSize     int
	suggestLimit int
	basePath     string

	// State
	started bool

	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore serves the given catalog instead of loading one on Start.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithCatalogPath loads the catalog from a YAML file on Start. Ignored when
// WithStore is also given.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		s.catalogPath = path
	}
}

// WithThemeStore sets the backend theme preferences persist to.
func WithThemeStore(store theme.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.prefs = store
		}
	}
}

// WithDefaultTheme sets the theme of clients without a stored preference.
func WithDefaultTheme(t theme.Theme) Option {
	return func(s *Service) {
		if _, err := theme.Parse(string(t)); err == nil {
			s.defaultTheme = t
		}
	}
}

// WithMemoSize bounds the filter result memo. size <= 0 disables it.
func WithMemoSize(size int) Option {
	return func(s *Service) {
		s.memoSize = size
	}
}

// WithSuggestLimit caps suggestions for empty results. limit <= 0 disables them.
func WithSuggestLimit(limit int) Option {
	return func(s *Service) {
		s.suggestLimit = limit
	}
}

// WithBasePath sets the deployment base path locations are resolved under.
func WithBasePath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.basePath = path
		}
	}
}

// WithMetrics sets the metrics manager; the process-wide one is the default.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultTheme: theme.Light,
		memoSize:     256,
		suggestLimit: 3,
		basePath:     "/",
		metrics:      metrics.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the catalog when none was injected and prepares the derived
// state served from it.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting portfolio service...")

	if s.store == nil {
		store, err := repository.Load(ctx, repository.WithPath(s.catalogPath))
		if err != nil {
			return err
		}
		s.store = store
		s.logger.Info(ctx, "catalog loaded", logger.String("source", store.Source()))
	}
	if s.prefs == nil {
		s.prefs = prefstore.NewMemoryStore()
		s.logger.Info(ctx, "using in-memory theme store")
	}

	projects := s.store.Projects(ctx)
	games := s.store.Games(ctx)

	s.preference = theme.NewPreference(s.prefs, s.defaultTheme)
	s.results = memo.New[[]catalog.Record](memo.WithMaxSize(s.memoSize))
	s.facets = catalog.BuildFacetIndex(projects)
	s.resolver = navigation.NewResolver(s.basePath)
	s.metrics.SetCatalogSize(len(projects), len(games))

	s.started = true
	s.logger.Info(ctx, "portfolio service started",
		logger.Int("projects", len(projects)),
		logger.Int("games", len(games)),
		logger.String("version", s.store.Version()),
		logger.Int("memoSize", s.memoSize),
	)
	return nil
}

// Stop releases the theme store and drops memoised results.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping portfolio service...")

	if closer, ok := s.prefs.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			s.logger.Warn(context.Background(), "close theme store", logger.Error(err))
		}
	}
	s.results.Purge()

	s.started = false
	s.logger.Info(context.Background(), "portfolio service stopped")
}

// Filter evaluates state against the catalog. Results are memoised per
// catalog version and canonical state, so equal states share one evaluation.
func (s *Service) Filter(ctx context.Context, state catalog.State) (types.FilterResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return types.FilterResult{}, ErrNotStarted
	}

	key := memo.Key(s.store.Version(), state.Key())
	items, hit := s.results.Get(ctx, key)
	if !hit {
		items = catalog.Filter(s.store.Projects(ctx), state)
		s.results.Put(ctx, key, items)
	}
	s.metrics.RecordMemoLookup(hit, int(s.results.Len()))

	kind := filterKindRestricted
	if state.IsEmpty() {
		kind = filterKindAll
	}
	s.metrics.RecordFilter(kind, len(items))

	res := types.FilterResult{
		Items: slices.Clone(items),
		Count: len(items),
		Total: s.store.Count(ctx),
	}
	if res.Count == 0 && s.suggestLimit > 0 && state.NormalizedQuery() != "" {
		res.Suggestions = catalog.Suggest(s.store.Projects(ctx), state.NormalizedQuery(), s.suggestLimit)
		if len(res.Suggestions) > 0 {
			s.metrics.RecordSuggestion()
		}
	}

	s.logger.Debug(ctx, "filter evaluated",
		logger.String("query", state.NormalizedQuery()),
		logger.Strings("categories", state.Categories.Values()),
		logger.Strings("stack", state.Stack.Values()),
		logger.Int("count", res.Count),
		logger.Bool("memoised", hit),
	)
	return res, nil
}

// Project returns one record by slug.
func (s *Service) Project(ctx context.Context, slug string) (catalog.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return catalog.Record{}, ErrNotStarted
	}
	return s.store.Project(ctx, slug)
}

// Facets returns the distinct categories and stack tags of the catalog.
func (s *Service) Facets(_ context.Context) (catalog.FacetIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return catalog.FacetIndex{}, ErrNotStarted
	}
	return catalog.FacetIndex{
		Categories: slices.Clone(s.facets.Categories),
		StackTags:  slices.Clone(s.facets.StackTags),
	}, nil
}

// Games returns the games page content.
func (s *Service) Games(ctx context.Context) ([]model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	games := s.store.Games(ctx)
	if games == nil {
		games = []model.Game{}
	}
	return games, nil
}

// Navigate resolves an already split path and fragment to a view and a
// scroll request.
func (s *Service) Navigate(_ context.Context, path, fragment string) navigation.Result {
	res := s.locator().ResolveParts(path, fragment)
	s.metrics.RecordViewResolution(string(res.View), res.Anchor)
	return res
}

// Locate resolves a raw location such as "/projects#projectsTop".
func (s *Service) Locate(_ context.Context, location string) navigation.Result {
	res := s.locator().Resolve(location)
	s.metrics.RecordViewResolution(string(res.View), res.Anchor)
	return res
}

// Theme returns the client's theme preference.
func (s *Service) Theme(ctx context.Context, client string) (theme.Theme, error) {
	pref, err := s.themePreference()
	if err != nil {
		return s.defaultTheme, err
	}
	t, err := pref.Load(ctx, client)
	if err != nil {
		s.logger.Warn(ctx, "theme load failed, serving default", logger.String("client", client), logger.Error(err))
	}
	return t, err
}

// SetTheme validates raw and stores it as the client's preference.
func (s *Service) SetTheme(ctx context.Context, client, raw string) (theme.Theme, error) {
	pref, err := s.themePreference()
	if err != nil {
		return "", err
	}
	t, err := theme.Parse(raw)
	if err != nil {
		return "", err
	}
	if err := pref.Set(ctx, client, t); err != nil {
		return "", err
	}
	s.metrics.RecordThemeChange(string(t))
	return t, nil
}

// ToggleTheme flips the client's preference between light and dark.
func (s *Service) ToggleTheme(ctx context.Context, client string) (theme.Theme, error) {
	pref, err := s.themePreference()
	if err != nil {
		return "", err
	}
	t, err := pref.Toggle(ctx, client)
	if err != nil {
		return t, err
	}
	s.metrics.RecordThemeChange(string(t))
	return t, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":      s.started,
		"memoSize":     s.memoSize,
		"suggestLimit": s.suggestLimit,
		"basePath":     s.basePath,
		"defaultTheme": string(s.defaultTheme),
	}

	if s.started {
		stats["projects"] = s.store.Count(ctx)
		stats["games"] = len(s.store.Games(ctx))
		stats["catalogVersion"] = s.store.Version()
		stats["memoEntries"] = s.results.Len()
		stats["categories"] = len(s.facets.Categories)
		stats["stackTags"] = len(s.facets.StackTags)
		if c, ok := s.prefs.(counter); ok {
			if n, err := c.Len(ctx); err == nil {
				stats["themePreferences"] = n
			}
		}
	}

	return stats
}

// locator returns the resolver; before Start one is built on demand since
// resolving needs no loaded state.
func (s *Service) locator() *navigation.Resolver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.resolver != nil {
		return s.resolver
	}
	return navigation.NewResolver(s.basePath)
}

func (s *Service) themePreference() (*theme.Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.preference, nil
}
