package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateAgeCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := newValidateAgeCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"25"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate-age command failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Valid age: 25") {
		t.Errorf("output %q does not confirm the valid age", buf.String())
	}
}

func TestValidateAgeCommandOutOfRange(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := newValidateAgeCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"150"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate-age command failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Age must be between 0 and 120!") {
		t.Errorf("output %q does not contain the handler message", output)
	}
	if !strings.Contains(output, "Cleanup code executed") {
		t.Error("cleanup line missing from output")
	}
}

func TestValidateAgeCommandRethrow(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := newValidateAgeCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"150", "--rethrow"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate-age command failed: %v", err)
	}

	output := buf.String()
	// The outer scope catches the remapped kind and reports the original.
	if !strings.Contains(output, "remapped from") {
		t.Errorf("output %q does not mention the remapping", output)
	}
	if !strings.Contains(output, "INVALID_ARGUMENT") {
		t.Errorf("output %q does not name the original kind", output)
	}
}
