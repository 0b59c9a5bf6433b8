// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CompletionService: Chat-completion endpoint for recommendations
//   - VolumeSearcher: Book metadata lookup for cover images
//   - ListStore: String key/value persistence for the reading lists
//   - ConfigStore: Application configuration
//
// VolumeSearcher failures are absorbed by the cover resolution service;
// the other interfaces surface errors to the caller.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
