// Package utils exposes the ambient helpers of the digitrot command.
//
// ConfigurationLoader merges embedded defaults, configuration files and
// DIGITROT_ environment variables through Viper. LoggerFactory builds zap
// loggers that write diagnostics to standard error, and FlushingWriter keeps
// results written to standard output visible immediately.
package utils
