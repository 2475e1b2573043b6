package types

// ============================================================================
// Tag Tree Limits Constants
// ============================================================================
// The NBT format itself caps string lengths at an unsigned 16-bit length and
// array/list lengths at a signed 32-bit count. The depth figures follow what
// game servers enforce when accepting untrusted payloads.

const (
	// MaxStringLenWire is the largest encodable string or name (u16 length).
	MaxStringLenWire = 1<<16 - 1

	// MaxArrayLenWire is the largest encodable array or list (i32 count).
	MaxArrayLenWire = 1<<31 - 1

	// MaxTreeDepthDefault matches the nesting limit enforced by vanilla servers.
	MaxTreeDepthDefault = 512

	// MaxTreeDepthDeep allows very deep trees for special cases.
	MaxTreeDepthDeep = 1024

	// MaxTreeDepthShallow is a conservative limit for untrusted input.
	MaxTreeDepthShallow = 64

	// MaxArrayLenDefault bounds a single decoded array or list (16 Mi elements).
	MaxArrayLenDefault = 16 << 20

	// MaxArrayLenStrict is a conservative per-array bound (64 Ki elements).
	MaxArrayLenStrict = 64 << 10

	// MaxDecompressedDefault bounds inflated input (256 MB).
	MaxDecompressedDefault = 256 << 20

	// MaxDecompressedRelaxed bounds inflated input for large worlds (2 GB).
	MaxDecompressedRelaxed = 2 << 30

	// MaxDecompressedStrict bounds inflated input for constrained use (8 MB).
	MaxDecompressedStrict = 8 << 20
)

// Limits bounds what a decoder accepts and what the validator allows, to
// prevent resource exhaustion on malformed or hostile input.
type Limits struct {
	// MaxDepth is the maximum nesting depth of containers.
	MaxDepth int

	// MaxArrayLen is the maximum element count of a single array.
	MaxArrayLen int

	// MaxListLen is the maximum element count of a single list.
	MaxListLen int

	// MaxStringLen is the maximum byte length of a string or key.
	MaxStringLen int

	// MaxDecompressedSize is the maximum size of the inflated payload in bytes.
	MaxDecompressedSize int64
}

// DefaultLimits returns limits suitable for ordinary game data.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:            MaxTreeDepthDefault,
		MaxArrayLen:         MaxArrayLenDefault,
		MaxListLen:          MaxArrayLenDefault,
		MaxStringLen:        MaxStringLenWire,
		MaxDecompressedSize: MaxDecompressedDefault,
	}
}

// RelaxedLimits returns permissive limits that accept anything the wire
// format can express. Use with caution on untrusted input.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:            MaxTreeDepthDeep,
		MaxArrayLen:         MaxArrayLenWire,
		MaxListLen:          MaxArrayLenWire,
		MaxStringLen:        MaxStringLenWire,
		MaxDecompressedSize: MaxDecompressedRelaxed,
	}
}

// StrictLimits returns conservative limits for untrusted network input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:            MaxTreeDepthShallow,
		MaxArrayLen:         MaxArrayLenStrict,
		MaxListLen:          MaxArrayLenStrict,
		MaxStringLen:        MaxStringLenWire / 2,
		MaxDecompressedSize: MaxDecompressedStrict,
	}
}

// OrDefault returns l with every zero field replaced by its default.
func (l Limits) OrDefault() Limits {
	d := DefaultLimits()
	if l.MaxDepth <= 0 {
		l.MaxDepth = d.MaxDepth
	}
	if l.MaxArrayLen <= 0 {
		l.MaxArrayLen = d.MaxArrayLen
	}
	if l.MaxListLen <= 0 {
		l.MaxListLen = d.MaxListLen
	}
	if l.MaxStringLen <= 0 {
		l.MaxStringLen = d.MaxStringLen
	}
	if l.MaxDecompressedSize <= 0 {
		l.MaxDecompressedSize = d.MaxDecompressedSize
	}
	return l
}
