package generators

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"vtp/internal/collector"
	"vtp/internal/pattern"
)

var eofCase = EOFTestCase{
	Vectors: map[string]EOFVector{
		"vec_1": {
			Code:          "0xef0001",
			ContainerKind: "INITCODE",
			Results: map[string]EOFResult{
				"Prague": {Result: true},
				"Osaka":  {Result: true},
			},
		},
		"vec_0": {
			Code: "0xef00",
			Results: map[string]EOFResult{
				"Prague": {Exception: "EOF_InvalidPrefix", Result: false},
			},
		},
	},
}

func TestEOF_FanOut(t *testing.T) {
	c := collector.New[EOFResult](collector.Policy{})
	EOF().Generate("validInvalid", "/eof/validInvalid.json", eofCase, c)

	tuples := c.Parameters()
	expected := [][]any{
		{"validInvalid/vec_0", "Prague", []byte{0xef, 0x00}, "", EOFResult{Exception: "EOF_InvalidPrefix"}, true},
		{"validInvalid/vec_1", "Osaka", []byte{0xef, 0x00, 0x01}, "INITCODE", EOFResult{Result: true}, true},
		{"validInvalid/vec_1", "Prague", []byte{0xef, 0x00, 0x01}, "INITCODE", EOFResult{Result: true}, true},
	}

	var got [][]any
	for _, tuple := range tuples {
		got = append(got, tuple.Fields())
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("unexpected tuples (-want +got):\n%s", diff)
	}
}

func TestEOF_ForkScope(t *testing.T) {
	tests := []struct {
		name     string
		forks    []string
		expected int
	}{
		{name: "all forks", forks: nil, expected: 3},
		{name: "one fork", forks: []string{"Prague"}, expected: 2},
		{name: "fork only one vector has", forks: []string{"Osaka"}, expected: 1},
		{name: "fork no vector has", forks: []string{"Cancun"}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := collector.New[EOFResult](collector.Policy{})
			EOF(tt.forks...).Generate("validInvalid", "/eof/validInvalid.json", eofCase, c)
			if len(c.Parameters()) != tt.expected {
				t.Errorf("expected %d tuples, got %d", tt.expected, len(c.Parameters()))
			}
		})
	}
}

func TestEOF_BadCode(t *testing.T) {
	tc := EOFTestCase{Vectors: map[string]EOFVector{
		"vec_0": {Code: "0xzz", Results: map[string]EOFResult{"Prague": {Result: true}}},
	}}

	c := collector.New[EOFResult](collector.Policy{})
	EOF().Generate("bad", "/eof/bad.json", tc, c)

	if len(c.Parameters()) != 1 {
		t.Fatalf("expected 1 tuple, got %d", len(c.Parameters()))
	}
	if c.Parameters()[0].Runnable() {
		t.Error("tuple with undecodable code should not be runnable")
	}
}

func TestEOF_Filtered(t *testing.T) {
	ignores, err := pattern.CompileAll("vec_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := collector.New[EOFResult](collector.Policy{Ignores: ignores})
	EOF().Generate("validInvalid", "/eof/validInvalid.json", eofCase, c)

	for _, tuple := range c.Parameters() {
		want := tuple.TestName() == "validInvalid/vec_0"
		if tuple.Runnable() != want {
			t.Errorf("%s: expected runnable=%v", tuple.TestName(), want)
		}
	}
}

func TestHex(t *testing.T) {
	for _, in := range []string{"0xef0001", "0Xef0001", "ef0001"} {
		b, err := DecodeHex(in)
		if err != nil {
			t.Fatalf("DecodeHex(%q): unexpected error %v", in, err)
		}
		if EncodeHex(b) != "0xef0001" {
			t.Errorf("DecodeHex(%q) round trip gave %s", in, EncodeHex(b))
		}
	}

	if b, err := DecodeHex("0x"); err != nil || len(b) != 0 {
		t.Errorf("expected empty code for 0x, got %v, %v", b, err)
	}

	for _, in := range []string{"0x0Xef0001", "0X0xef", "0x0x", "x0ef"} {
		if b, err := DecodeHex(in); err == nil {
			t.Errorf("DecodeHex(%q): expected error, got %x", in, b)
		}
	}
}

func TestRaw(t *testing.T) {
	c := collector.New[any](collector.Policy{})
	Raw().Generate("testA", "/suite/a.json", map[string]any{"x": 1}, c)

	if diff := cmp.Diff([]any{"testA", map[string]any{"x": 1}, true}, c.Parameters()[0].Fields()); diff != "" {
		t.Errorf("unexpected tuple (-want +got):\n%s", diff)
	}
}
