// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The global stack runs in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → router
//
// Authenticate and RequireAdmin are mounted per route group by the router,
// so they run after routing. They publish the caller through the shared
// request state, which lets the outer layers log and trace the user and the
// group a request touched once the handler returns.
package middleware
