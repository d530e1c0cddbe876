package bench

import (
	"fmt"
	"time"

	"github.com/Sokol111/avro-codec-bench/pkg/avro/container"
)

// Result is the measurement of one run.
type Result struct {
	Operation Operation
	Records   int

	// Elapsed and Bytes are set for encode and decode.
	Elapsed time.Duration
	Bytes   int64

	// Set for container. CompressionName, when set, is printed instead of Compression.
	Compression     container.Compression
	CompressionName string
	WriteElapsed    time.Duration
	ReadElapsed     time.Duration
	FileSize        int64
}

// MBPerSecond is Bytes over Elapsed in decimal megabytes. Zero when nothing was timed.
func (r Result) MBPerSecond() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.Bytes) / secs / 1e6
}

// String renders the single stdout line for the run.
func (r Result) String() string {
	switch r.Operation {
	case OperationEncode:
		return fmt.Sprintf("Encoded %d records in %.6f seconds (%.2f MB/s, %d bytes)",
			r.Records, r.Elapsed.Seconds(), r.MBPerSecond(), r.Bytes)
	case OperationDecode:
		return fmt.Sprintf("Decoded %d records in %.6f seconds (%.2f MB/s, %d bytes)",
			r.Records, r.Elapsed.Seconds(), r.MBPerSecond(), r.Bytes)
	case OperationContainer:
		name := r.CompressionName
		if name == "" {
			name = r.Compression.String()
		}
		return fmt.Sprintf("Container[%s]: Wrote %d records in %.6f seconds, Read in %.6f seconds (%d bytes)",
			name, r.Records, r.WriteElapsed.Seconds(), r.ReadElapsed.Seconds(), r.FileSize)
	default:
		return fmt.Sprintf("%s: %d records", r.Operation, r.Records)
	}
}
