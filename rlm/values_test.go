package rlm

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt64(42)},
		{"uint64", uint64(42), starlark.MakeUint64(42)},
		{"float64", 3.14, starlark.Float(3.14)},
		{"[]any", []any{1, "a"}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a")})},
		{"[]string", []string{"a", "b"}, starlark.NewList([]starlark.Value{starlark.String("a"), starlark.String("b")})},
		{"map[string]any", map[string]any{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"starlark value passthrough", starlark.String("x"), starlark.String("x")},
		{"nil pointer", (*int)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		value := toStarlarkValue(func(s string) string { return s })
		if _, ok := value.(starlark.Callable); !ok {
			t.Fatalf("got %T", value)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
