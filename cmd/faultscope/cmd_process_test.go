package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestProcessCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
		skip []string
	}{
		{
			name: "parse failure",
			args: []string{"abc"},
			want: []string{"Invalid number format"},
			skip: []string{"Result:"},
		},
		{
			name: "division by zero",
			args: []string{"0"},
			want: []string{"Arithmetic error", "Cannot divide by zero!"},
			skip: []string{"Result:"},
		},
		{
			name: "success",
			args: []string{"25"},
			want: []string{"Result: 4"},
		},
		{
			name: "mixed inputs keep going",
			args: []string{"abc", "0", "25"},
			want: []string{"Invalid number format", "Arithmetic error", "Result: 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			cmd := newProcessCmd()
			cmd.SetOut(buf)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("process command failed: %v", err)
			}

			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("output %q does not contain %q", output, want)
				}
			}
			for _, skip := range tt.skip {
				if strings.Contains(output, skip) {
					t.Errorf("output %q unexpectedly contains %q", output, skip)
				}
			}
		})
	}
}

func TestProcessCommandParallel(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := newProcessCmd()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--workers", "4", "abc", "0", "25", "50"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("process command failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Result: 4") {
		t.Errorf("output %q missing result for 25", output)
	}
	if !strings.Contains(output, "Result: 2") {
		t.Errorf("output %q missing result for 50", output)
	}
	if !strings.Contains(output, "PARSE_FAILURE") {
		t.Errorf("output %q missing parse fault report", output)
	}
}
