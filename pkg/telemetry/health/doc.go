// Package health serves liveness and readiness endpoints next to the
// metrics endpoint in watch mode. Readiness turns 503 while the watched
// configuration is invalid, so a deployment can gate on it.
package health
