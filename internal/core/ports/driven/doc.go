// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - AuthAPI / DocumentAPI / LearningAPI / ChatAPI: the remote service,
//     reachable through the single HTTP gateway in internal/adapters/driven/api
//   - TokenStore: persistence for the bearer token, the only client state
//     that survives a restart
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
