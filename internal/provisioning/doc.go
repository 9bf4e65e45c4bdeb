// Package provisioning creates Flywheel groups and projects from a project
// description.
//
// All operations are idempotent through existence probing: a path that
// already resolves remotely is reported and left untouched. The probe and
// the create are separate calls, so two runs racing on the same path can
// still collide; the second create surfaces the remote error. Dry-run mode
// performs the probes but skips every mutation.
package provisioning
