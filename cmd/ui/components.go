package ui

import (
	"fmt"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

// FormatOutcome renders a scope outcome state with its icon and color.
func FormatOutcome(state scope.State) string {
	switch state {
	case scope.StateSucceeded:
		return SucceededStyle.Render(fmt.Sprintf("%s %s", IconSucceeded, state))
	case scope.StateHandled:
		return HandledStyle.Render(fmt.Sprintf("%s %s", IconHandled, state))
	case scope.StatePropagating:
		return PropagatedStyle.Render(fmt.Sprintf("%s %s", IconPropagated, state))
	default:
		return state.String()
	}
}

// SuccessMessage formats a success line with the result value.
func SuccessMessage(message string) string {
	return fmt.Sprintf("%s %s", Green(IconSucceeded), Green(message))
}

// HandledMessage formats the line a handler prints when it consumes a fault.
func HandledMessage(f *fault.Fault) string {
	return fmt.Sprintf("%s %s %s", HandledStyle.Render(IconHandled), Yellow("Caught:"), f.Message)
}

// PropagatedMessage formats an unhandled fault escaping the outermost scope.
func PropagatedMessage(err error) string {
	return fmt.Sprintf("%s %s", Red(IconPropagated), Red(err.Error()))
}

// CleanupMessage formats the finally-style cleanup line.
func CleanupMessage(message string) string {
	return fmt.Sprintf("%s %s", CleanupStyle.Render(IconCleanup), Cyan(message))
}

// ScenarioHeader renders a titled section for one demo scenario.
func ScenarioHeader(title string) string {
	return Section(fmt.Sprintf("%s %s", IconScenario, title))
}

// KindBadge renders a fault kind as a short colored tag.
func KindBadge(kind fault.Kind) string {
	if kind == "" {
		return Gray("-")
	}
	return Blue(string(kind))
}
