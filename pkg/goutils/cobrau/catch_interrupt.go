/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/voedger/edmfacets/pkg/goutils/logger"
)

// Executes command with context which is cancelled on interrupt signal.
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	return goAndCatchInterrupt(cmd.ExecuteContext)
}

func goAndCatchInterrupt(f func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- f(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		logger.Info("interrupt signal received")
	}
	logger.Verbose("waiting for function to finish...")
	return <-done
}
