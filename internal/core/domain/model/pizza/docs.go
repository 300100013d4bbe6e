// Package pizza contains the read-only Pizza menu entity and its Category value
// object. The order engine consumes pizzas to price selections and expand
// recipes into ingredient requirements; it never creates or mutates them.
package pizza
