package telemetry

import (
	"fmt"
	"sync"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/events"
)

// MockPublisher is a simple publisher used in tests.
type MockPublisher struct {
	mu           sync.Mutex
	Transactions []events.TransactionEvent
	States       []events.StateChangeEvent
	Fail         bool
	Disconnected bool
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// PublishTransaction records the event or fails if configured to.
func (m *MockPublisher) PublishTransaction(ev events.TransactionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return fmt.Errorf("publish failed")
	}
	m.Transactions = append(m.Transactions, ev)
	return nil
}

// PublishStateChange records the event or fails if configured to.
func (m *MockPublisher) PublishStateChange(ev events.StateChangeEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return fmt.Errorf("publish failed")
	}
	m.States = append(m.States, ev)
	return nil
}

// Disconnect marks the publisher as closed.
func (m *MockPublisher) Disconnect() {
	m.mu.Lock()
	m.Disconnected = true
	m.mu.Unlock()
}

// Counts returns the number of recorded transaction and state events.
func (m *MockPublisher) Counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Transactions), len(m.States)
}
