// Package etadigest exposes the HTTP surface of the service: health,
// route listing, per-route digests, and the operator message relay.
package etadigest
