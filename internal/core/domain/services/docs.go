// Package services contains stateless domain services that implement business
// logic spanning multiple aggregates: the inventory ledger (stock reservation
// and compensation) and the courier pool (courier acquisition and release).
// Both operate exclusively through repositories bound to the caller's open
// transaction, so the store's isolation guarantees carry the correctness of
// concurrent reservations.
package services
