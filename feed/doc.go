// Package feed consumes the inbound telemetry feed and folds it into
// the shared stores.
//
// It is split in three layers:
//   - parser.go: pure payload decoding, returns (update, error) and has
//     no side effects, so the wire formats are testable in isolation
//   - ingest.go: the Pipeline, the single writer path into the
//     prediction store and the vehicle tracker; drops and logs
//     undecodable messages (an expected, non-fatal condition)
//   - subscriber.go: the MQTT subscription delivering every inbound
//     message to the pipeline, with reconnect handling
//
// Topic families are recognized by substring, per the upstream broker
// contract: "station" messages carry per-station ETA lists, "transport"
// messages carry vehicle telemetry. Anything else is ignored.
package feed
