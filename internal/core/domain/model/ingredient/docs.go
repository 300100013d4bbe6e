// Package ingredient contains the Ingredient aggregate and its Type value object.
// Stock levels are the contended resource of the order engine: reservations
// decrement them inside a store transaction and cancellations restore them, with
// the aggregate itself guaranteeing that stock never becomes negative.
package ingredient
