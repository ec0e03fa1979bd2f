// Package log provides the logging abstraction used by statship components.
//
// Library code never logs through a package-level logger; a Logger is passed
// in at construction. A zerolog adapter and a no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	client, err := statship.New(cfg, statship.WithLogger(logger))
//
// Implement the Logger interface to plug in any other logging library.
package log
