// Package restaurant models a restaurant split across two stores: the relational Restaurant
// row and its Location document (coordinates, address, opening hours, working days).
// A restaurant is fully provisioned only when both halves exist.
package restaurant
