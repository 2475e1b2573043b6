package format

import "github.com/joshuapare/nbtkit/pkg/types"

// Sniff inspects the leading bytes of data and reports the compression
// wrapper in use. Anything unrecognised is treated as uncompressed.
func Sniff(data []byte) types.Compression {
	if len(data) >= 2 && data[0] == GzipMagic0 && data[1] == GzipMagic1 {
		return types.CompressionGzip
	}
	// zlib: CMF 0x78 and (CMF<<8 | FLG) divisible by 31.
	if len(data) >= 2 && data[0] == ZlibMagic0 && (uint16(data[0])<<8|uint16(data[1]))%31 == 0 {
		return types.CompressionZlib
	}
	return types.CompressionNone
}
