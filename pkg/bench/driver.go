// Package bench times Avro encode, decode and container passes over a
// generated dataset and reports throughput.
package bench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Sokol111/avro-codec-bench/pkg/avro/container"
	"github.com/Sokol111/avro-codec-bench/pkg/avro/encoding"
	"github.com/Sokol111/avro-codec-bench/pkg/core/logger"
	"github.com/Sokol111/avro-codec-bench/pkg/dataset"
	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Driver runs one benchmark operation at a time. It is not safe for concurrent use.
type Driver struct {
	codec encoding.Codec
	cfg   Config
	log   *zap.Logger
}

func NewDriver(codec encoding.Codec, cfg Config, log *zap.Logger) *Driver {
	return &Driver{
		codec: codec,
		cfg:   cfg,
		log:   log.With(zap.String("codec", codec.Name())),
	}
}

// Run executes req, preceded by the warmup rounds when req.Warmup is set.
func (d *Driver) Run(ctx context.Context, req Request) (Result, error) {
	ctx = logger.WithFields(logger.With(ctx, d.log), zap.String("operation", string(req.Operation)))

	if err := d.checkSupported(req.Operation); err != nil {
		return Result{}, err
	}

	if req.Warmup {
		if err := d.Warmup(ctx, req); err != nil {
			return Result{}, errors.Wrap(err, "warmup failed")
		}
	}

	return d.run(ctx, req)
}

// Warmup repeats req over at most WarmupCount records, discarding the results.
func (d *Driver) Warmup(ctx context.Context, req Request) error {
	warm := req
	warm.Warmup = false
	warm.Count = min(req.Count, d.cfg.WarmupCount)

	log := logger.Get(ctx)
	log.Debug("warming up",
		zap.Int("iterations", d.cfg.WarmupIterations),
		zap.Int("records", warm.Count),
	)

	for i := 0; i < d.cfg.WarmupIterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := d.run(ctx, warm); err != nil {
			return errors.Wrapf(err, "iteration %d", i)
		}
	}

	return nil
}

func (d *Driver) run(ctx context.Context, req Request) (Result, error) {
	switch req.Operation {
	case OperationEncode:
		return d.Encode(ctx, req.Count)
	case OperationDecode:
		return d.Decode(ctx, req.Count)
	case OperationContainer:
		result, err := d.Container(ctx, req.Count, req.Compression)
		if err != nil {
			return Result{}, err
		}
		result.CompressionName = req.CompressionName
		return result, nil
	default:
		return Result{}, errors.Wrapf(ErrUnknownOperation, "%q", req.Operation)
	}
}

func (d *Driver) checkSupported(op Operation) error {
	if op != OperationContainer {
		return nil
	}
	if _, ok := d.codec.(encoding.ContainerCodec); !ok {
		return errors.Wrapf(ErrUnsupportedOperation, "container files are not supported by the %s codec", d.codec.Name())
	}
	return nil
}

// Encode times encoding count generated records.
func (d *Driver) Encode(ctx context.Context, count int) (Result, error) {
	people := dataset.Generate(count)
	logger.Get(ctx).Debug("records generated", zap.Int("records", len(people)))

	var total int64
	start := time.Now()
	for i := range people {
		data, err := d.codec.Encode(&people[i])
		if err != nil {
			return Result{}, errors.Wrapf(err, "failed to encode record %d", i)
		}
		total += int64(len(data))
	}
	elapsed := time.Since(start)

	return Result{
		Operation: OperationEncode,
		Records:   len(people),
		Elapsed:   elapsed,
		Bytes:     total,
	}, nil
}

// Decode pre-encodes count records outside the timed section, then times decoding them.
func (d *Driver) Decode(ctx context.Context, count int) (Result, error) {
	people := dataset.Generate(count)

	encoded := make([][]byte, len(people))
	var total int64
	for i := range people {
		data, err := d.codec.Encode(&people[i])
		if err != nil {
			return Result{}, errors.Wrapf(err, "failed to encode record %d", i)
		}
		encoded[i] = data
		total += int64(len(data))
	}
	logger.Get(ctx).Debug("records pre-encoded",
		zap.Int("records", len(encoded)),
		zap.String("size", humanize.Bytes(uint64(total))),
	)

	start := time.Now()
	for i, data := range encoded {
		if _, err := d.codec.Decode(data); err != nil {
			return Result{}, errors.Wrapf(err, "failed to decode record %d", i)
		}
	}
	elapsed := time.Since(start)

	return Result{
		Operation: OperationDecode,
		Records:   len(encoded),
		Elapsed:   elapsed,
		Bytes:     total,
	}, nil
}

// Container times writing count records into a temporary container file and
// reading them back. The file is removed on every exit path.
func (d *Driver) Container(ctx context.Context, count int, compression container.Compression) (Result, error) {
	codec, ok := d.codec.(encoding.ContainerCodec)
	if !ok {
		return Result{}, d.checkSupported(OperationContainer)
	}

	people := dataset.Generate(count)

	path := filepath.Join(d.cfg.TempDir, fmt.Sprintf("avrobench-%s.avro", uuid.NewString()))
	log := logger.Get(logger.WithFields(ctx, zap.String("path", path)))
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn("failed to remove container file", zap.Error(err))
			return
		}
		log.Debug("container file removed")
	}()

	opts := container.Options{Compression: compression, BlockLength: d.cfg.BlockLength}

	start := time.Now()
	if err := writeContainerFile(path, codec, people, opts); err != nil {
		return Result{}, err
	}
	writeElapsed := time.Since(start)

	start = time.Now()
	summary, err := readContainerFile(path, codec)
	if err != nil {
		return Result{}, err
	}
	readElapsed := time.Since(start)

	if summary.Records != len(people) {
		return Result{}, errors.Newf("container read %d records, wrote %d", summary.Records, len(people))
	}
	if summary.Compression != compression {
		return Result{}, errors.Newf("container header declares %s compression, wrote %s", summary.Compression, compression)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to stat container file")
	}

	log.Debug("container pass finished",
		zap.String("compression", summary.Compression.String()),
		zap.String("size", humanize.Bytes(uint64(info.Size()))),
	)

	return Result{
		Operation:    OperationContainer,
		Records:      len(people),
		Compression:  compression,
		WriteElapsed: writeElapsed,
		ReadElapsed:  readElapsed,
		FileSize:     info.Size(),
	}, nil
}

func writeContainerFile(path string, codec encoding.ContainerCodec, people []dataset.Person, opts container.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create container file")
	}

	if err := codec.WriteContainer(f, people, opts); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to write container file")
	}

	if err := f.Close(); err != nil {
		return errors.Wrap(err, "failed to close container file")
	}
	return nil
}

func readContainerFile(path string, codec encoding.ContainerCodec) (container.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return container.Summary{}, errors.Wrap(err, "failed to open container file")
	}
	defer f.Close()

	summary, err := codec.ReadContainer(f, func(dataset.Person) error { return nil })
	if err != nil {
		return summary, errors.Wrap(err, "failed to read container file")
	}
	return summary, nil
}
