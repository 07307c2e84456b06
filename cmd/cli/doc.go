// Package cli constructs the digitrot command-line interface, wiring the
// Cobra root command, the Viper-backed configuration loader and zap logging
// around the rotation service.
package cli
