// Package services provides domain services for the settlement workflow:
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - CodeVerifier: generation and constant-time verification of the secret
//     codes gating physical-custody transitions
//
// Domain services are stateless and coordinate between aggregates following
// Domain-Driven Design principles.
package services
