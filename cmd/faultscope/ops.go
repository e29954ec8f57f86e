package main

import (
	"context"
	"strconv"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
	"github.com/saiprakashreddy2023-maker/faultscope/pkg/scope"
)

// Sample operations used by the demo commands. Each mirrors one of the
// classic failure shapes the library is built to handle.

// divideOp fails with KindDivisionByZero when b is zero.
func divideOp(a, b int) scope.Operation[int] {
	return func(ctx context.Context) (int, error) {
		if b == 0 {
			return 0, fault.New(fault.KindDivisionByZero, "divide", "Cannot divide by zero!")
		}
		return a / b, nil
	}
}

// validateAgeOp fails with KindInvalidArgument outside [0, 120].
func validateAgeOp(age int) scope.Operation[int] {
	return func(ctx context.Context) (int, error) {
		if age < 0 || age > 120 {
			return 0, fault.New(fault.KindInvalidArgument, "validate", "Age must be between 0 and 120!").
				WithContext("age", age)
		}
		return age, nil
	}
}

// readFileOp simulates a read of a file that never exists.
func readFileOp(name string) scope.Operation[string] {
	return func(ctx context.Context) (string, error) {
		return "", fault.New(fault.KindResourceNotFound, "read", "File not found!").
			WithContext("file", name)
	}
}

// processOp parses data as an integer and divides 100 by it, so it can
// fail two different ways: KindParseFailure or KindDivisionByZero.
func processOp(data string) scope.Operation[int] {
	return func(ctx context.Context) (int, error) {
		n, err := strconv.Atoi(data)
		if err != nil {
			return 0, fault.Wrap(err, fault.KindParseFailure, "parse")
		}
		if n == 0 {
			return 0, fault.New(fault.KindDivisionByZero, "divide", "Cannot divide by zero!")
		}
		return 100 / n, nil
	}
}
