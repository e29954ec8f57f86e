package pipeline

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/saiprakashreddy2023-maker/faultscope/pkg/fault"
)

// The classic name-stream example: filter by prefix, lowercase, collect.
func TestFilterMap(t *testing.T) {
	names := []string{"Sai", "Reddy", "Suresh", "Prakash", "Sunil"}

	withR := Filter(names, func(s string) bool { return strings.HasPrefix(s, "R") })
	lowered := Map(withR, strings.ToLower)

	if len(lowered) != 1 || lowered[0] != "reddy" {
		t.Errorf("pipeline result = %v, want [reddy]", lowered)
	}
}

func TestEach_Order(t *testing.T) {
	var seen []int
	Each([]int{3, 1, 2}, func(v int) { seen = append(seen, v) })

	want := []int{3, 1, 2}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Each() visited %v, want %v", seen, want)
		}
	}
}

func parseAndDivide(ctx context.Context, data string) (int, error) {
	n, err := strconv.Atoi(data)
	if err != nil {
		return 0, fault.Wrap(err, fault.KindParseFailure, "parse")
	}
	if n == 0 {
		return 0, fault.New(fault.KindDivisionByZero, "divide", "Cannot divide by zero!")
	}
	return 100 / n, nil
}

func TestTryMap_IsolatesElementFaults(t *testing.T) {
	out, faults := TryMap(context.Background(), "process", []string{"abc", "0", "25"}, parseAndDivide)

	if len(out) != 1 || out[0] != 4 {
		t.Errorf("TryMap() values = %v, want [4]", out)
	}
	if len(faults) != 2 {
		t.Fatalf("TryMap() faults = %d, want 2", len(faults))
	}
	if faults[0].Index != 0 || faults[0].Fault.Kind != fault.KindParseFailure {
		t.Errorf("faults[0] = {%d %v}, want {0 %v}", faults[0].Index, faults[0].Fault.Kind, fault.KindParseFailure)
	}
	if faults[1].Index != 1 || faults[1].Fault.Kind != fault.KindDivisionByZero {
		t.Errorf("faults[1] = {%d %v}, want {1 %v}", faults[1].Index, faults[1].Fault.Kind, fault.KindDivisionByZero)
	}
}

func TestTryMap_PanicDoesNotAbortRest(t *testing.T) {
	out, faults := TryMap(context.Background(), "risky", []int{1, 2, 3}, func(ctx context.Context, v int) (int, error) {
		if v == 2 {
			panic("bad element")
		}
		return v * 10, nil
	})

	if len(out) != 2 || out[0] != 10 || out[1] != 30 {
		t.Errorf("TryMap() values = %v, want [10 30]", out)
	}
	if len(faults) != 1 || faults[0].Index != 1 {
		t.Fatalf("TryMap() faults = %v, want one fault at index 1", faults)
	}
	if faults[0].Fault.Kind != fault.KindUnclassified {
		t.Errorf("panic fault kind = %v, want %v", faults[0].Fault.Kind, fault.KindUnclassified)
	}
}

func TestParallelTryMap_PreservesOrder(t *testing.T) {
	in := make([]int, 50)
	for i := range in {
		in[i] = i
	}

	out, faults := ParallelTryMap(context.Background(), "parallel", in, 8, func(ctx context.Context, v int) (int, error) {
		if v%10 == 0 {
			return 0, fault.New(fault.KindOutOfRange, "check", "multiple of ten")
		}
		return v * 2, nil
	})

	if len(faults) != 5 {
		t.Fatalf("ParallelTryMap() faults = %d, want 5", len(faults))
	}
	for i, ef := range faults {
		if ef.Index != i*10 {
			t.Errorf("faults[%d].Index = %d, want %d", i, ef.Index, i*10)
		}
	}
	if len(out) != 45 {
		t.Fatalf("ParallelTryMap() values = %d, want 45", len(out))
	}
	// Successes keep input order.
	if out[0] != 2 || out[1] != 4 || out[len(out)-1] != 98 {
		t.Errorf("ParallelTryMap() out of order: first=%d second=%d last=%d", out[0], out[1], out[len(out)-1])
	}
}

func TestParallelTryMap_LimitBelowOne(t *testing.T) {
	out, faults := ParallelTryMap(context.Background(), "single", []int{1, 2}, 0, func(ctx context.Context, v int) (int, error) {
		return v, nil
	})
	if len(out) != 2 || len(faults) != 0 {
		t.Errorf("ParallelTryMap() = (%v, %v), want both elements succeeding", out, faults)
	}
}
