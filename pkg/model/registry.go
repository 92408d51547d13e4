package model

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"sync"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
)

// Registry stores schemas by name. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
	logger  *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger passed to loaded schemas.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		schemas: make(map[string]*Schema),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds s. Names must be unique.
func (r *Registry) Register(s *Schema) error {
	if s == nil || s.Name() == "" {
		return fmt.Errorf("%w: schema name is required", ErrInvalidRuleFile)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[s.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSchema, s.Name())
	}
	r.schemas[s.Name()] = s
	return nil
}

func (r *Registry) Get(name string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	return s, nil
}

// Names returns the registered schema names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile parses content as the rule file called filename and registers
// the resulting schema.
func (r *Registry) LoadFile(ctx context.Context, filename string, content []byte, funcs Funcs) (*Schema, error) {
	parser := NewParserForFile(filename)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}

	rf, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	s, err := Build(rf, funcs, WithLogger(r.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if err := r.Register(s); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Load walks fsys and registers a schema for every YAML or JSON rule file.
// Files with other extensions are skipped.
func (r *Registry) Load(ctx context.Context, fsys fs.FS, funcs Funcs) error {
	var loaded int
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(ErrLoadingCancelled, ctxErr)
		}
		if d.IsDir() || NewParserForFile(p) == nil {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}

		s, err := r.LoadFile(ctx, path.Base(p), content, funcs)
		if err != nil {
			return err
		}

		loaded++
		r.logger.DebugContext(ctx, "schema loaded", logger.Schema(s.Name()), slog.String("file", p))
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "rule files loaded", slog.Int("schemas", loaded))
	return nil
}
