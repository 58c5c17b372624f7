// Package observability provides OpenTelemetry tracing helpers.
//
// The package only uses the otel API: it attaches spans and attributes to
// whatever tracer provider the host application has installed. Exporter and
// provider setup stays with the application.
//
//	ctx, span := observability.StartSpan(ctx, "oauth2.exchange")
//	defer span.End()
package observability
