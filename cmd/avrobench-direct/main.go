// Package main provides avrobench-direct, which benchmarks Avro encoding straight
// from typed records. It does not support the container operation.
//
// Usage:
//
//	avrobench-direct [encode|decode] [count]
package main

import (
	"fmt"
	"os"

	"github.com/Sokol111/avro-codec-bench/internal/cli"
	"github.com/Sokol111/avro-codec-bench/pkg/avro/encoding"
)

var version = "dev"

func main() {
	cmd := cli.NewRootCommand(cli.Program{
		Name:    "avrobench-direct",
		Short:   "Benchmark Avro encoding directly from typed records",
		Version: version,
		Codec:   encoding.NewDirectCodec,
	})

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
