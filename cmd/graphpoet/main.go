// SPDX-License-Identifier: MIT

// Command graphpoet builds a word-affinity graph from a corpus and inserts
// bridge words into poems, either once from the shell or as an HTTP service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
