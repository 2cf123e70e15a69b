package params

import (
	"testing"

	"vtp/internal/collector"
)

// Run runs fn as a subtest for every tuple, named after the tuple. Tuples
// that are not runnable are reported as skipped.
func Run(t *testing.T, tuples []collector.Tuple, fn func(t *testing.T, tuple collector.Tuple)) {
	t.Helper()
	for _, tuple := range tuples {
		t.Run(tuple.TestName(), func(t *testing.T) {
			if !tuple.Runnable() {
				t.Skipf("disabled by filter: %s", tuple.FullPath())
			}
			fn(t, tuple)
		})
	}
}

// Values returns the values of the standard tuples in tuples, in order.
// Extended and foreign tuples are skipped.
func Values[T any](tuples []collector.Tuple) []T {
	values := make([]T, 0, len(tuples))
	for _, tuple := range tuples {
		if std, ok := tuple.(collector.Standard[T]); ok {
			values = append(values, std.Value)
		}
	}
	return values
}

// Runnable returns only the tuples whose enabled flag is set.
func Runnable(tuples []collector.Tuple) []collector.Tuple {
	var runnable []collector.Tuple
	for _, tuple := range tuples {
		if tuple.Runnable() {
			runnable = append(runnable, tuple)
		}
	}
	return runnable
}
