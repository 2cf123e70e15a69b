package params

import (
	"testing"

	"vtp/internal/collector"
)

func TestRun(t *testing.T) {
	c := collector.New[int](collector.Policy{})
	c.Add("one", "/p.json", 1, true)
	c.Add("two", "/p.json", 2, false)
	c.Add("three", "/p.json", 3, true)

	var seen []string
	Run(t, c.Parameters(), func(t *testing.T, tuple collector.Tuple) {
		seen = append(seen, tuple.TestName())
	})

	if len(seen) != 2 || seen[0] != "one" || seen[1] != "three" {
		t.Errorf("expected only runnable tuples to reach fn, got %v", seen)
	}
}

func TestValuesAndRunnable(t *testing.T) {
	c := collector.New[string](collector.Policy{})
	c.Add("a", "/p.json", "va", true)
	c.AddExtended("b", "/p.json", "Prague", nil, "", "vb", true)
	c.Add("c", "/p.json", "vc", false)

	values := Values[string](c.Parameters())
	if len(values) != 2 || values[0] != "va" || values[1] != "vc" {
		t.Errorf("expected standard tuple values only, got %v", values)
	}

	if got := len(Runnable(c.Parameters())); got != 2 {
		t.Errorf("expected 2 runnable tuples, got %d", got)
	}
}
