// Package commands defines the joltage CLI and wires dependencies for subcommands.
//
// Commands
//
//   - joltage [file]              Print the total for file (or stdin)
//   - lines [file]                Print every line's contribution, then the total
//   - fingerprint [file]          Print a BLAKE2b fingerprint of the input and the total
//   - version                     Print the build version
//
// # Implementation
//
// The root command resolves configuration before any subcommand runs:
// defaults, then the optional --config YAML file, then flags the user set
// explicitly. It then configures logging and builds the shared app.App.
package commands
