// Package events defines the rental related events emitted on the event bus.
//
// Available event types:
//   - TransactionEvent: outcome of one rent, return or charge attempt
//   - StateChangeEvent: vehicle availability transition
package events
