package featmatrix

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/resolve"
)

// Engine memoizes Build results by table content and parameters.
// Every call returns its own copy, so callers may modify what they get.
type Engine struct {
	cache  *lru.Cache[string, *models.Result]
	logger *zap.Logger
}

// NewEngine creates an engine holding at most size results.
func NewEngine(size int, logger *zap.Logger) (*Engine, error) {
	cache, err := lru.New[string, *models.Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cache: cache, logger: logger}, nil
}

// Explore loads path and returns the cached or freshly built result.
func (e *Engine) Explore(path string, opts Options) (*models.Result, error) {
	t, err := LoadTable(path, opts)
	if err != nil {
		return nil, err
	}
	return e.Build(t, opts)
}

// Build returns the cached result for identical table content and parameters,
// building and caching it otherwise. Failed builds are not cached.
func (e *Engine) Build(t *models.Table, opts Options) (*models.Result, error) {
	key, err := cacheKey(t, opts)
	if err != nil {
		return nil, err
	}
	if res, ok := e.cache.Get(key); ok {
		e.logger.Debug("result cache hit", zap.String("key", key[:12]))
		return res.Clone(), nil
	}

	res, err := Build(t, opts)
	if err != nil {
		return nil, err
	}
	e.cache.Add(key, res)
	e.logger.Debug("result cached", zap.String("key", key[:12]), zap.Int("entries", e.cache.Len()))
	return res.Clone(), nil
}

// Len returns the number of cached results.
func (e *Engine) Len() int {
	return e.cache.Len()
}

// Purge drops every cached result.
func (e *Engine) Purge() {
	e.cache.Purge()
}

// cacheParams lists every option that influences a Build result.
type cacheParams struct {
	Table      string             `json:"table"`
	Source     string             `json:"source"`
	Sheet      string             `json:"sheet"`
	Candidates resolve.Candidates `json:"candidates"`
	Overrides  resolve.Overrides  `json:"overrides"`
	Features   []string           `json:"features"`
	MaxRecords int                `json:"max_records"`
	EmptyToken string             `json:"empty_token"`
	Separator  string             `json:"separator"`
}

func cacheKey(t *models.Table, opts Options) (string, error) {
	data, err := json.Marshal(cacheParams{
		Table:      t.Fingerprint(),
		Source:     t.Source,
		Sheet:      t.Sheet,
		Candidates: opts.Candidates,
		Overrides:  opts.Overrides,
		Features:   opts.Features,
		MaxRecords: opts.MaxRecords,
		EmptyToken: opts.Codec.EmptyToken,
		Separator:  opts.Codec.Separator,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
