package types

// Compression selects the container wrapped around the raw tag stream.
type Compression int

const (
	// CompressionAuto sniffs the input on decode; on encode it means Gzip.
	CompressionAuto Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZlib
)

func (c Compression) String() string {
	switch c {
	case CompressionAuto:
		return "auto"
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	default:
		return "unknown"
	}
}

// ParseCompression resolves a name as printed by String.
func ParseCompression(s string) (Compression, bool) {
	switch s {
	case "auto", "":
		return CompressionAuto, true
	case "none", "raw":
		return CompressionNone, true
	case "gzip", "gz":
		return CompressionGzip, true
	case "zlib":
		return CompressionZlib, true
	}
	return CompressionAuto, false
}

// ByteOrder selects the endianness of multi-byte numbers on the wire.
type ByteOrder int

const (
	// BigEndian is the Java edition layout.
	BigEndian ByteOrder = iota
	// LittleEndian is the Bedrock edition layout.
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little"
	}
	return "big"
}

// CodecOptions controls the binary encoder/decoder.
type CodecOptions struct {
	// Compression used for encoding; decoding honours it unless it is
	// CompressionAuto, in which case the input is sniffed.
	Compression Compression

	// CompressionLevel is passed to the compressor. Zero selects the
	// library default.
	CompressionLevel int

	// ByteOrder of numeric fields. Default: BigEndian.
	ByteOrder ByteOrder

	// Limits bounds what Decode accepts. Zero fields select DefaultLimits.
	Limits Limits
}

// SaveOptions controls the growing-buffer save path.
type SaveOptions struct {
	// InitialBits is the log2 of the first encode buffer capacity.
	// Default: 1 (two bytes).
	InitialBits int

	// MaxBits is the log2 of the largest capacity attempted before giving
	// up with ErrInsufficientBuffer. Default: 25 (32 MiB).
	MaxBits int

	// Atomic writes to a temporary file in the same directory and renames
	// it over the target. When false the target is created if absent,
	// opened read-write, truncated and overwritten in place.
	Atomic bool

	// Sync flushes file data to stable storage before closing.
	Sync bool
}

const (
	DefaultInitialBits = 1
	DefaultMaxBits     = 25
	maxSaneBits        = 40
)

// DefaultSaveOptions returns the growth bounds used when none are given.
func DefaultSaveOptions() SaveOptions {
	return SaveOptions{InitialBits: DefaultInitialBits, MaxBits: DefaultMaxBits}
}

// OrDefault returns o with zero or out-of-range growth bounds replaced.
func (o SaveOptions) OrDefault() SaveOptions {
	if o.InitialBits <= 0 || o.InitialBits > maxSaneBits {
		o.InitialBits = DefaultInitialBits
	}
	if o.MaxBits <= 0 || o.MaxBits > maxSaneBits {
		o.MaxBits = DefaultMaxBits
	}
	if o.MaxBits < o.InitialBits {
		o.MaxBits = o.InitialBits
	}
	return o
}
