// Package i18n renders validation messages in the user's language.
//
// A Translator holds per-language translation trees loaded through a
// TranslationAdapter (in-memory maps, YAML/JSON files from an fs.FS, or the
// embedded defaults that cover every validator key in English and German).
// Keys use dot notation and templates use named placeholders:
//
//	// en.yaml
//	en:
//	  validation:
//	    min_length: "%{field} must be at least %{min} characters long"
//
//	tr, err := i18n.NewTranslator(ctx, i18n.DefaultAdapter())
//	msg := tr.T("en", "validation.min_length", "field", "login", "min", "3")
//
// Match resolves an Accept-Language header against the loaded languages
// using golang.org/x/text/language, falling back to the default language.
//
// *Translator satisfies validator.Translator, so failures can be localized
// with ValidationErrors.Translate.
package i18n
