// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags, DSP_* environment variables and NAME=SPEED arguments
// into the application's internal configuration.
package cli
