package container

import (
	"strings"

	"github.com/linkedin/goavro/v2"
)

// Compression names the block codec of an Object Container File.
type Compression string

const (
	CompressionNull    Compression = goavro.CompressionNullLabel
	CompressionDeflate Compression = goavro.CompressionDeflateLabel
)

// ParseCompression resolves a compression name.
// Anything other than a supported name resolves to CompressionNull.
func ParseCompression(name string) Compression {
	switch Compression(strings.TrimSpace(name)) {
	case CompressionDeflate:
		return CompressionDeflate
	default:
		return CompressionNull
	}
}

// String returns the container codec label.
func (c Compression) String() string {
	return string(c)
}
