package main

import (
	"fmt"
	"io"

	"github.com/saiprakashreddy2023-maker/faultscope/cmd/ui"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/common/logger"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

// stateObserver logs every lifecycle transition of a scope at debug level.
func stateObserver() scope.Observer {
	return func(name string, state scope.State) {
		logger.Debug("scope transition", "scope", name, "state", state.String())
	}
}

// catchPrinter returns a recovery func that prints the caught fault and
// consumes it.
func catchPrinter(w io.Writer) scope.RecoverFunc {
	return func(f *fault.Fault) error {
		fmt.Fprintln(w, ui.HandledMessage(f))
		return nil
	}
}

// cleanupPrinter returns a cleanup action that prints a finally-style line.
func cleanupPrinter(w io.Writer, message string) scope.Cleanup {
	return func() {
		fmt.Fprintln(w, ui.CleanupMessage(message))
	}
}

// reportPropagated prints an unhandled fault escaping the outermost
// scope and returns it, so cobra reports a non-zero exit.
func reportPropagated(w io.Writer, err error) error {
	fmt.Fprintln(w, ui.PropagatedMessage(err))
	return err
}
