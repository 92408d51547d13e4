package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
)

// DefaultLanguage is used when no language is configured or matched.
const DefaultLanguage = "en"

// Translator renders translation keys for the loaded languages.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter

	tags    []language.Tag
	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	for lang, tree := range translations {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if tree == nil {
			return fmt.Errorf("%w: nil translations for language %q", ErrInvalidStructure, lang)
		}
	}

	t.mu.Lock()
	t.translations = translations
	t.buildMatcher()
	langs := t.supportedLanguages()
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", langs))
	return nil
}

// buildMatcher prepares the language matcher with the default language first,
// so it is picked when nothing matches. Callers hold the write lock.
func (t *Translator) buildMatcher() {
	langs := t.supportedLanguages()
	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i] == t.defaultLang && langs[j] != t.defaultLang
	})

	t.tags = t.tags[:0]
	t.langs = t.langs[:0]
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			t.logger.Warn("skipping unparsable language code", slog.String("lang", lang))
			continue
		}
		t.tags = append(t.tags, tag)
		t.langs = append(t.langs, lang)
	}
	t.matcher = language.NewMatcher(t.tags)
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the best loaded language for an Accept-Language header.
// It returns the default language for empty or malformed headers and when
// nothing matches.
func (t *Translator) Match(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return t.defaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.langs) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether key exists for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tree, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(tree, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from the
// key/value pairs in args. Unknown languages fall back to the default
// language. Missing keys return the key itself unless WithFallbackToKey(false)
// is set, in which case the result is empty.
//
//	// "validation.present": "%{field} is required"
//	tr.T("en", "validation.present", "field", "login") // "login is required"
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tree, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", slog.String("lang", lang), slog.String("key", key))
		}
		tree, ok = t.translations[t.defaultLang]
	}

	if ok {
		if val, found := lookup(tree, key); found {
			if s, isString := val.(string); isString {
				return sprintf(s, args)
			}
			if t.missingLogMode {
				t.logger.Warn("translation is not a string",
					slog.String("lang", lang), slog.String("key", key), slog.String("type", fmt.Sprintf("%T", val)))
			}
		} else if t.missingLogMode {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
	}

	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// lookup traverses a nested map using dot-separated keys.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf replaces "%{name}" placeholders with values from the key/value pairs.
// Unknown placeholders are kept. An odd trailing argument is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
