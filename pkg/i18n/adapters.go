package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed locales/*.yaml
var defaultLocales embed.FS

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every YAML and JSON file under dir in fsys. Files for the
// same language are merged; later files win on conflicting keys.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// DefaultAdapter serves the built-in English and German validation messages.
func DefaultAdapter() *FSAdapter {
	return NewFSAdapter(defaultLocales, "locales")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)

	err := fs.WalkDir(a.fsys, a.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(ErrLoadingCancelled, ctxErr)
		}
		if d.IsDir() {
			return nil
		}

		parser := NewParserForFile(path)
		if parser == nil {
			return nil
		}

		content, err := fs.ReadFile(a.fsys, path)
		if err != nil {
			return errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		for lang, tree := range translations {
			if result[lang] == nil {
				result[lang] = make(map[string]any, len(tree))
			}
			mergeTree(result[lang], tree)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MultiAdapter merges several adapters in order; later adapters override
// earlier ones key by key.
type MultiAdapter []TranslationAdapter

func (m MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)
	for _, a := range m {
		if a == nil {
			continue
		}
		translations, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, tree := range translations {
			if result[lang] == nil {
				result[lang] = make(map[string]any, len(tree))
			}
			mergeTree(result[lang], tree)
		}
	}
	return result, nil
}

// mergeTree copies src into dst, descending into nested maps.
func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		sv, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		dv, ok := dst[k].(map[string]any)
		if !ok {
			dv = make(map[string]any, len(sv))
			dst[k] = dv
		}
		mergeTree(dv, sv)
	}
}
