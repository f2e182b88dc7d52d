// Package services provides domain services that do not belong to a single aggregate.
//
// The package includes:
//   - CodeIssuer: issues the pickup token and confirmation code handed to a delivery agent on claim
//   - Clock: the time source used to stamp orders, deliveries and restaurants
package services
