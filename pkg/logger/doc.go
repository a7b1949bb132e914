// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The package aims to standardise structured logging across services by
// exposing a single factory – New – that creates a *slog.Logger configured by
// a set of Option functions. These options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//   • Register ContextExtractor callbacks that inject attributes pulled from a
//     context value (for example a request id) every time Handle is invoked.
//
// # Architecture
//
// Logger builds a decorated slog.Handler. First, New determines the concrete
// slog.Handler implementation – slog.NewTextHandler or slog.NewJSONHandler –
// based on the configured Format. It then wraps the handler with
// LogHandlerDecorator which is responsible for executing any registered
// ContextExtractor callbacks before delegating to the underlying handler.
//
// Helper constructors such as Error, CircuitID, RuleID, etc. live in
// attr.go and return commonly-used slog.Attr instances to keep attribute naming
// consistent across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/circuitcheck/pkg/logger"
//
//	func main() {
//	    cfg := logger.Config{Level: "debug", Format: "text"}
//	    if err := cfg.Validate(); err != nil {
//	        // report and exit
//	    }
//	    log := logger.New(
//	        logger.WithConfig(cfg),
//	        logger.WithContextValue("run_id", ctxKeyRunID),
//	    )
//	    logger.SetAsDefault(log)
//
//	    ctx := context.WithValue(context.Background(), ctxKeyRunID, "abc-123")
//	    log.InfoContext(ctx, "batch validated",
//	        logger.Count(42),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   • WithFormat – text or json output.
//   • WithLevel – set a custom slog.Level.
//   • WithConfig – level and format from a Config loaded from LOG_LEVEL and
//     LOG_FORMAT. Config.Validate checks the values without panicking.
//   • WithAttr – attach static attributes.
//   • WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil,
// allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
//
// Discard returns a logger that drops everything; library code uses it as the
// default when the caller supplies no logger.
package logger
