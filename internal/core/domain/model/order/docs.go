// Package order contains the Order aggregate, its line items and its lifecycle
// status. An order is placed with aggregated line items, a computed total and
// an acquired courier, and can only ever transition from pending to cancelled;
// every state change is committed atomically with its stock and courier
// side effects.
package order
