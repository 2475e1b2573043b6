package nbtfile

import (
	"github.com/joshuapare/nbtkit/pkg/types"
)

// OpenOptions controls how a file is decoded.
type OpenOptions struct {
	// Codec selects compression, byte order and decode limits.
	// The zero value sniffs compression and reads big-endian.
	Codec types.CodecOptions
}

// SaveOptions controls how a tree is written.
type SaveOptions struct {
	// Codec selects compression and byte order. CompressionAuto writes
	// gzip.
	Codec types.CodecOptions

	// Write controls buffer growth and the write mode.
	Write types.SaveOptions

	// CreateBackup copies an existing file to <path>.bak first.
	CreateBackup bool
}

// OperationOptions controls the read-modify-write operations.
type OperationOptions struct {
	// Codec is used to read the file. When its Compression is
	// CompressionAuto the file's own compression is kept on write.
	Codec types.CodecOptions

	// CreateBackup creates a .bak file before modifying the file.
	// The backup is created at <path>.bak.
	CreateBackup bool

	// DryRun applies the change in memory and validates it without
	// writing anything.
	DryRun bool

	// Sync flushes the written file to stable storage.
	Sync bool
}

// Limits re-exports types.Limits for convenience.
type Limits = types.Limits

// DefaultLimits returns limits suitable for ordinary game data.
func DefaultLimits() Limits { return types.DefaultLimits() }

// RelaxedLimits returns limits accepting anything the format can express.
func RelaxedLimits() Limits { return types.RelaxedLimits() }

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits { return types.StrictLimits() }
