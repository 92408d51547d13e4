// Package validation exposes registered schemas over HTTP.
//
//	r := chi.NewRouter()
//	r.Mount("/", validation.Router(validation.RouterOptions{
//		Registry:   registry,
//		Translator: translator,
//		Logger:     log,
//	}))
//
// Routes:
//
//	GET  /schemas                     list schema names
//	POST /schemas/{schema}/validate   validate the request params; ?on=create|update|reify
//
// A valid submission answers 204. Failures answer 422 with one entry per
// failed rule, localized through the Accept-Language header.
package validation
