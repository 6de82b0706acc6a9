package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kompox/patternapi/internal/logging"
)

// ExitCodeError asks main to exit with Code without logging a failure. It is
// returned when the command itself worked but the remote side reported an
// error envelope.
type ExitCodeError struct {
	Code int
	Msg  string
}

func (e ExitCodeError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// withCmdRunLogger implements the Span pattern for CLI command logging.
// It emits a start log line and returns a context with logger attributes attached,
// plus a cleanup function to emit the success or failure log line.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(ctx, "call", pattern)
//	defer func() { cleanup(err) }()
//
// Log message format:
// - Start:   CMD:<operation>/S (with resourceId in logger attributes)
// - Success: CMD:<operation>/EOK (with err, elapsed in logger attributes)
// - Failure: CMD:<operation>/EFAIL (with err, elapsed in logger attributes)
//
// ExitCodeError is logged as EOK with its exit code.
func withCmdRunLogger(ctx context.Context, operation, resourceID string) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("resourceId", resourceID)
	ctx = logging.WithLogger(ctx, logger)

	logger.Info(ctx, "CMD:"+operation+"/S")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()

		var exitCodeErr ExitCodeError
		if errors.As(err, &exitCodeErr) {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "err", "", "exitCode", exitCodeErr.Code, "elapsed", elapsed)
			return
		}
		if err == nil {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "err", "", "elapsed", elapsed)
			return
		}
		errStr := err.Error()
		if len(errStr) > 32 {
			errStr = errStr[:32] + "..."
		}
		logger.Info(ctx, "CMD:"+operation+"/EFAIL", "err", errStr, "elapsed", elapsed)
	}

	return ctx, cleanup
}
