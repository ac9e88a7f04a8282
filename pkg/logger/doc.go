// Package logger provides slog constructors and a handler decorator that
// injects request-scoped attributes from the context.
//
// The SendKit client logs one record per API exchange. Logging is off by
// default (NewNope) and is enabled with sendkit.WithLogger or
// sendkit.WithCustomLogger.
//
// # Context Extractors
//
// A ContextExtractor pulls an attribute out of the context on every log call:
//
//	traceID := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(traceKey{}).(string); ok && id != "" {
//			return slog.String("trace_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	client, err := sendkit.New("", sendkit.WithLogger("mailer", traceID))
//
// Any handler can be wrapped directly:
//
//	h := slog.NewTextHandler(os.Stderr, nil)
//	log := slog.New(logger.NewLogHandlerDecorator(h, traceID))
package logger
