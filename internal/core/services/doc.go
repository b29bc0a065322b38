// Package services implements the driving port interfaces.
// Services contain the learning-session state machines and orchestrate
// calls to driven ports (adapters).
//
// Network-bound mutating operations follow a shared discipline: at most
// one outstanding call per engine, guarded by a busy flag, and an epoch
// counter taken before each call so responses that arrive after the engine
// state was reset or replaced are discarded instead of applied.
package services
