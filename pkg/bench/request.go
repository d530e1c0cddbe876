package bench

import (
	"strconv"
	"strings"

	"github.com/Sokol111/avro-codec-bench/pkg/avro/container"
	"github.com/cockroachdb/errors"
)

// Operation selects what a run measures.
type Operation string

const (
	OperationEncode    Operation = "encode"
	OperationDecode    Operation = "decode"
	OperationContainer Operation = "container"
)

// ParseOperation accepts exactly encode, decode or container.
func ParseOperation(name string) (Operation, error) {
	switch op := Operation(name); op {
	case OperationEncode, OperationDecode, OperationContainer:
		return op, nil
	default:
		return "", errors.Wrapf(ErrUnknownOperation, "%q", name)
	}
}

// Request is one benchmark invocation.
type Request struct {
	Operation   Operation
	Count       int
	Compression container.Compression

	// CompressionName is the compression argument as given, echoed in the container result line.
	CompressionName string
	Warmup          bool
}

// ParseRequest maps positional arguments `[operation] [count] [compression]`
// onto a Request. Missing arguments take the defaults from cfg; an unparseable
// or negative count falls back to cfg.DefaultCount and an unknown compression
// name to null. Only the operation can fail.
func ParseRequest(args []string, cfg Config) (Request, error) {
	req := Request{
		Operation:       OperationEncode,
		Count:           cfg.DefaultCount,
		Compression:     cfg.DefaultCompression,
		CompressionName: cfg.DefaultCompression.String(),
	}

	if len(args) > 0 {
		op, err := ParseOperation(args[0])
		if err != nil {
			return Request{}, err
		}
		req.Operation = op
	}

	if len(args) > 1 {
		req.Count = parseCount(args[1], cfg.DefaultCount)
	}

	if len(args) > 2 {
		req.Compression = container.ParseCompression(args[2])
		req.CompressionName = args[2]
	}

	return req, nil
}

func parseCount(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
