// Package main provides avrobench-generic, which benchmarks Avro encoding through
// an intermediate generic value.
//
// Usage:
//
//	avrobench-generic [encode|decode|container] [count] [compression]
package main

import (
	"fmt"
	"os"

	"github.com/Sokol111/avro-codec-bench/internal/cli"
	"github.com/Sokol111/avro-codec-bench/pkg/avro/encoding"
	"github.com/Sokol111/avro-codec-bench/pkg/avro/schema"
)

var version = "dev"

func main() {
	cmd := cli.NewRootCommand(cli.Program{
		Name:    "avrobench-generic",
		Short:   "Benchmark Avro encoding via generic values",
		Version: version,
		Codec: func(def *schema.Definition) encoding.Codec {
			return encoding.NewGenericCodec(def)
		},
	})

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
