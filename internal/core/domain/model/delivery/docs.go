// Package delivery provides the Delivery entity: the record of one agent's claim on one order.
// A delivery exists from a successful claim until the hand-off completes or is cancelled;
// at most one delivery exists per order at any time.
package delivery
