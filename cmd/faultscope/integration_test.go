package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

// TestDemoScenarioSuite runs the same scenario suite the demo command
// renders and checks every row against the documented outcomes.
func TestDemoScenarioSuite(t *testing.T) {
	rows := runScenarios(context.Background(), io.Discard)
	require.Len(t, rows, 9)

	byName := make(map[string]demoRow, len(rows))
	for _, r := range rows {
		byName[r.scenario] = r
	}

	clean := byName["divide 10 2"]
	assert.Equal(t, scope.StateSucceeded, clean.outcome)
	assert.Empty(t, clean.handledBy)
	assert.Equal(t, 1, clean.cleanups)

	caught := byName["divide 10 0"]
	assert.Equal(t, scope.StateHandled, caught.outcome)
	assert.Equal(t, fault.KindDivisionByZero, caught.handledBy)
	assert.Equal(t, 1, caught.cleanups)

	wildcard := byName["divide 10 0 (wildcard)"]
	assert.Equal(t, scope.StateHandled, wildcard.outcome)
	assert.Equal(t, fault.KindAny, wildcard.handledBy)

	rethrown := byName["validate-age 150 (rethrow)"]
	assert.Equal(t, scope.StateHandled, rethrown.outcome)
	assert.Equal(t, fault.KindUnclassified, rethrown.faultKind,
		"outer scope should observe the remapped kind")

	missing := byName["read-file test.txt"]
	assert.Equal(t, scope.StateHandled, missing.outcome)
	assert.Equal(t, fault.KindResourceNotFound, missing.faultKind)

	assert.Equal(t, fault.KindParseFailure, byName["process abc"].faultKind)
	assert.Equal(t, fault.KindDivisionByZero, byName["process 0"].faultKind)
	assert.Equal(t, scope.StateSucceeded, byName["process 25"].outcome)

	escaped := byName["validate-age 150 (no handler)"]
	assert.Equal(t, scope.StatePropagating, escaped.outcome)
	assert.Equal(t, fault.KindInvalidArgument, escaped.faultKind)
	assert.Equal(t, 1, escaped.cleanups, "cleanup still runs when the fault escapes")
}

func TestDemoCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := newDemoCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Scenario Summary")
	assert.Contains(t, output, "divide 10 2")
	assert.Contains(t, output, "process abc")
	assert.Contains(t, output, "validate-age 150 (no handler)")
}

func TestReadFileCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := newReadFileCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"missing.txt"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Attempting to read file: missing.txt")
	assert.Contains(t, output, "File not found!")
	assert.Contains(t, output, "Cleanup code executed")
}
