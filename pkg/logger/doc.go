// Package logger builds the *slog.Logger used across fieldrules.
//
// New applies functional options (format, level, output, static attributes,
// environment presets) and wraps the chosen slog handler with a decorator that
// pulls request-scoped attributes, such as the request id, out of the context
// on every record.
//
// Attribute helpers keep key names consistent between packages:
//
//	log.WarnContext(ctx, "rule misconfigured",
//	    logger.Schema("user"),
//	    logger.Field("password"),
//	    logger.Validator("withFunction"),
//	    logger.Error(err),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check.
package logger
