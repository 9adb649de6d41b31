package metrics

// Package metrics defines interfaces and implementations for collecting
// rental transaction metrics. Sinks like PromSink and InfluxSink record
// events such as completed rentals or rejected requests and can be combined
// with NewMultiSink. The factory helpers return a MultiSink automatically
// when multiple sinks are configured.
