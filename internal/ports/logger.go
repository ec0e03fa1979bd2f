package ports

import "github.com/bft-labs/statship/pkg/log"

// Logger provides structured logging capabilities.
type Logger = log.Logger

// Field represents a key-value pair for structured logging.
type Field = log.Field

// Field constructors, re-exported so internal packages only import ports.
var (
	String   = log.String
	Int      = log.Int
	Duration = log.Duration
	Err      = log.Err
)
