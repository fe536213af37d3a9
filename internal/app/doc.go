// Package app wires application dependencies for the CLI.
//
// It resolves a Config (defaults, optional YAML file, flag overrides), opens
// the input, builds a scan.Scanner from the config and returns a Report for
// commands to print.
package app
