// Package config loads client settings from the environment and project
// descriptions from YAML files, and provides the interactive wizard that
// writes new project files.
package config
