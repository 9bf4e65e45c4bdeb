// Package naming derives Flywheel-safe names and identifiers for project
// structures.
//
// Flywheel constrains labels to 64 characters and group IDs to lowercase
// letters, digits, dashes, and underscores. Project IDs within a center
// group follow the pattern {prefix} for the primary project of the
// coordinating center and {prefix}-{project-slug} otherwise, so that
// multiple projects can share a center group without colliding.
package naming
