package telemetry

import (
	"context"

	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/events"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/core/logger"
	"github.com/hafizdnata/Simulator-Rental-Kendaraan-dengan-Performa-dan-Fault-Handling/internal/eventbus"
)

// StartForwarder subscribes to the event bus and publishes rental events
// until the context is canceled. Publish errors are logged, never fatal.
func StartForwarder(ctx context.Context, bus eventbus.EventBus, pub Publisher, log logger.Logger) {
	if bus == nil || pub == nil {
		return
	}
	sub := bus.SubscribeBuffered(64)
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.TransactionEvent:
					if err := pub.PublishTransaction(e); err != nil {
						log.Errorf("telemetry transaction publish: %v", err)
					}
				case events.StateChangeEvent:
					if err := pub.PublishStateChange(e); err != nil {
						log.Errorf("telemetry state publish: %v", err)
					}
				}
			}
		}
	}()
}
