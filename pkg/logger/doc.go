// Package logger builds slog loggers for the command-line tool.
//
// Diagnostics go to stderr so stdout stays free for report output when
// no output file is given.
package logger
