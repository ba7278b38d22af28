// Package querycache guarda respostas de leitura do backend por escopo, com TTL e
// invalidação explícita pelo chamador. Uma instância é criada no main e injetada.
package querycache

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/deepcalm/campaign-console/pkg/log"
	"github.com/deepcalm/campaign-console/pkg/metrics"
)

// Escopos usados pelos casos de uso; subescopos são separados por "/"
const (
	ScopeCampaigns    = "campaigns"
	ScopeAnalytics    = "analytics"
	ScopeIntegrations = "integrations"
	ScopeAnalyst      = "analyst"
)

// Key identifica uma consulta: escopo + parâmetros
type Key struct {
	Scope  string
	Params url.Values
}

func NewKey(scope string, params url.Values) Key {
	return Key{Scope: scope, Params: params}
}

// Fingerprint é estável para a mesma combinação escopo/parâmetros, em qualquer ordem
func Fingerprint(scope string, params url.Values) string {
	if len(params) == 0 {
		return scope
	}
	// Encode ordena pelas chaves
	return scope + "?" + params.Encode()
}

func (k Key) String() string {
	return Fingerprint(k.Scope, k.Params)
}

type entry struct {
	scope     string
	value     any
	expiresAt time.Time
}

type Cache struct {
	mu         sync.Mutex
	entries    map[string]entry
	generation uint64
	ttl        time.Duration
	group      singleflight.Group
	now        func() time.Time
	metrics    *metrics.Metrics
}

type Option func(*Cache)

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

// WithClock substitui o relógio (usado nos testes de expiração)
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New cria o cache; ttl <= 0 desliga o armazenamento mas mantém a deduplicação de buscas
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) lookup(fingerprint string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[fingerprint]
	if !ok {
		return nil, false
	}

	if !c.now().Before(e.expiresAt) {
		delete(c.entries, fingerprint)
		return nil, false
	}

	return e.value, true
}

func (c *Cache) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// store só grava se nenhuma invalidação aconteceu desde o início da busca
func (c *Cache) store(fingerprint, scope string, value any, startedAt uint64) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != startedAt {
		return
	}

	c.entries[fingerprint] = entry{
		scope:     scope,
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Get retorna o valor em cache ou executa fetch. Buscas concorrentes da mesma chave
// são agrupadas numa só chamada. Erros nunca são guardados.
func Get[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	fingerprint := key.String()

	if value, ok := c.lookup(fingerprint); ok {
		if typed, ok := value.(T); ok {
			c.metrics.CacheLookup(rootScope(key.Scope), true)
			return typed, nil
		}
	}

	c.metrics.CacheLookup(rootScope(key.Scope), false)

	// a busca compartilhada não herda o cancelamento de quem chegou primeiro;
	// cada chamador desiste pelo próprio ctx
	ch := c.group.DoChan(fingerprint, func() (any, error) {
		startedAt := c.currentGeneration()

		value, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		c.store(fingerprint, key.Scope, value, startedAt)
		return value, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Invalidate remove as entradas dos escopos informados (e dos seus subescopos)
// e retorna quantas foram removidas
func (c *Cache) Invalidate(scopes ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++

	removed := 0
	for fingerprint, e := range c.entries {
		for _, scope := range scopes {
			if matchesScope(e.scope, scope) {
				delete(c.entries, fingerprint)
				removed++
				break
			}
		}
	}

	c.metrics.CacheInvalidated(removed)
	log.L.WithFields(log.Fields{
		"scope":   strings.Join(scopes, ","),
		"removed": removed,
	}).Debug("Cache invalidado")

	return removed
}

// Len retorna o número de entradas guardadas, incluindo as expiradas ainda não removidas
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func matchesScope(entryScope, scope string) bool {
	return entryScope == scope || strings.HasPrefix(entryScope, scope+"/")
}

func rootScope(scope string) string {
	if i := strings.IndexByte(scope, '/'); i >= 0 {
		return scope[:i]
	}
	return scope
}
