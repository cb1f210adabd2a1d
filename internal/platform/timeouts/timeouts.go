// Package timeouts defines shared timeout constants used by the web process.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// HealthCheck caps a single gRPC health check round trip.
const HealthCheck = time.Second
