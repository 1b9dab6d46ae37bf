// Package logger provides the zap logger factory for the application.
//
// Console encoding (the default) is meant for the interactive CLI; json
// encoding is for running the HTTP API under a log collector.
package logger
