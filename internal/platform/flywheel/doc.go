// Package flywheel provides a wrapper around the Flywheel REST API.
//
// Flywheel has no Go SDK, so RealClient speaks the REST endpoints directly:
// lookup for existence probing, group creation, and project creation scoped
// to a parent group. The Client interface keeps the provisioning code
// independent of the transport and testable against MockClient.
package flywheel
