package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fieldrules/pkg/binder"
	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/model"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

type handler struct {
	registry   *model.Registry
	translator Translator
	logger     *slog.Logger
}

func newHandler(opts RouterOptions) *handler {
	if opts.Registry == nil {
		panic("validation: registry is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &handler{
		registry:   opts.Registry,
		translator: opts.Translator,
		logger:     log.With(logger.Component("validation")),
	}
}

func (h *handler) listSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SchemasResponse{Schemas: h.registry.Names()})
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "schema")

	schema, err := h.registry.Get(name)
	if err != nil {
		writeError(w, errors.Join(ErrNotFound, err))
		return
	}

	sc, err := model.ParseScenario(r.URL.Query().Get("on"))
	if err != nil {
		writeError(w, errors.Join(ErrInvalidScenario, err))
		return
	}

	params, err := binder.Params(r)
	if err != nil {
		h.logger.DebugContext(ctx, "failed to bind params", logger.Schema(name), logger.Error(err))
		writeError(w, bindError(err))
		return
	}

	err = schema.Validate(ctx, params, sc)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case validator.IsValidationError(err):
		failures := validator.ExtractValidationErrors(err)
		if h.translator != nil {
			failures = failures.Translate(h.translator, h.translator.Match(r.Header.Get("Accept-Language")))
		}
		writeFailures(w, failures)
	default:
		h.logger.ErrorContext(ctx, "schema validation aborted",
			logger.Schema(name),
			logger.Scenario(string(sc)),
			logger.Error(err),
		)
		writeError(w, fmt.Errorf("%w: %w", ErrInternal, err))
	}
}

func bindError(err error) error {
	if errors.Is(err, binder.ErrUnsupportedMediaType) || errors.Is(err, binder.ErrMissingContentType) {
		return errors.Join(ErrUnsupportedMediaType, err)
	}
	return errors.Join(ErrBadRequest, err)
}
