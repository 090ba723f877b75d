// Package main provides the strided CLI: it broadcasts one row across a
// batch without copying and prints every logical row.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"k8s.io/klog/v2"

	"github.com/born-ml/strided/internal/demo"
)

const version = "v0.0.1-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := demo.DefaultConfig()

	fs := flag.NewFlagSet("strided", flag.ContinueOnError)
	klog.InitFlags(fs)
	fs.IntVar(&cfg.Batches, "batches", cfg.Batches, "number of logical rows after expansion")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "row length when no prompt is given (values 1..width)")
	fs.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "text to tokenize into the broadcast row")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "tiktoken encoding used with -prompt")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	defer klog.Flush()

	if *showVersion {
		fmt.Printf("strided %s\n", version)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := demo.Run(ctx, cfg, os.Stdout); err != nil {
		klog.Errorf("strided: %v", err)
		return 1
	}
	return 0
}
