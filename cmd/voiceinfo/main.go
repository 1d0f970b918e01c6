// Command voiceinfo runs the voice-analysis kernels on synthetic signals.
//
// Signals are sums of sine tones plus optional deterministic Gaussian noise.
//
// Examples:
//
//	voiceinfo lpc --sample-rate 1000 --length 256 --tone 100:1 --order 4
//	voiceinfo formants --resonances 500:100,2000:300 --sample-rate 16000 --min-hz 0 --max-hz 8000
//	voiceinfo pitch --tone 200:1,400:0.5 --length 1024
//	voiceinfo noise --seed 1234 --count 8
//	voiceinfo analyze --tone 200:1,400:0.5 --noise-scale 0.01 --length 4096 -o yaml
//
// Every flag can also be set in a YAML file passed with --config or through
// a VOICEINFO_<FLAG> environment variable (dashes become underscores).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
