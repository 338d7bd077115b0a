// Package logger provides adapters for popular logger libraries to work with
// aatree's Logger interface.
//
// The adapters allow you to use your existing logger with aatree without
// writing boilerplate. Note that the standard library's slog.Logger already
// implements aatree.Logger directly.
//
// Example with zap:
//
//	zapLogger, _ := zap.NewDevelopment()
//
//	tree := aatree.New(nodeOf, keyOf, cmp.Compare[int],
//	    aatree.WithLogger(logger.NewZap(zapLogger)),
//	    aatree.WithInvariantChecks(),
//	)
package logger
