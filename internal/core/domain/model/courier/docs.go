// Package courier contains the Courier aggregate and its availability Status.
// Couriers are the second contended resource of the order engine: placing an
// order acquires exactly one available courier inside the same transaction that
// reserves stock, and cancellation releases it.
package courier
