package metrics

// MultiSink fans transaction events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordTransaction forwards the event to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordTransaction(ev TransactionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordTransaction(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordFleetState forwards occupancy snapshots when supported by the sink.
func (m *MultiSink) RecordFleetState(ev FleetStateEvent) error {
	for _, s := range m.Sinks {
		if fr, ok := s.(FleetStateRecorder); ok {
			if err := fr.RecordFleetState(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordBatteryLevel forwards battery snapshots when supported by the sink.
func (m *MultiSink) RecordBatteryLevel(ev BatteryLevelEvent) error {
	for _, s := range m.Sinks {
		if br, ok := s.(BatteryLevelRecorder); ok {
			if err := br.RecordBatteryLevel(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
