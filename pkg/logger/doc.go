// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a handler by Format: slog's JSON or text handler, or a
// colorized github.com/lmittmann/tint handler for FormatPretty. The
// handler is wrapped in a LogHandlerDecorator that runs registered
// ContextExtractor callbacks on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "tmpname"),
//	    logger.WithContextValue("op_id", opIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.Warn("tmpname: exceeds max names",
//	    logger.Component("tmpname"),
//	    logger.Reason("resource_exhausted"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
