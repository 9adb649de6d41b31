// Package rental implements the transaction engine of the rental business:
// renting and returning vehicles against an in-memory fleet and ledger,
// with cost computation, start preconditions, late penalties and damage
// handling. Every transaction attempt produces exactly one audit entry.
package rental
