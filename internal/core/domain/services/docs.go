// Package services provides domain services that span more than one
// aggregate or need collaborators outside the domain model.
//
// The package includes:
//   - PricingVerifier: recomputes an order's total from live catalog prices
//     and the shop configuration, and decides whether the order is admissible
//   - SecretKeyGenerator: issues the 6-digit pickup and delivery keys from an
//     injected random source
package services
