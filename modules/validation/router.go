package validation

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fieldrules/pkg/model"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Translator localizes failure messages. *i18n.Translator satisfies it.
type Translator interface {
	validator.Translator
	Match(acceptLanguage string) string
}

// RouterOptions configures the validation module.
// Translator and Logger are optional.
type RouterOptions struct {
	Registry   *model.Registry
	Translator Translator
	Logger     *slog.Logger
}

// Router mounts the schema routes. It panics without a registry.
func Router(opts RouterOptions) chi.Router {
	h := newHandler(opts)

	r := chi.NewRouter()
	r.Get("/schemas", h.listSchemas)
	r.Post("/schemas/{schema}/validate", h.validate)
	return r
}
