package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoader(t *testing.T) {
	path := writeConfig(t, `
model: "test-model"
max_iterations: 5
verbose: true
`)
	loader := NewLoader([]string{path}, schema)

	if model := First[string](loader, "model"); model != "test-model" {
		t.Fatalf("got %v", model)
	}
	if n := First[int](loader, "max_iterations"); n != 5 {
		t.Fatalf("got %v", n)
	}
	if !First[bool](loader, "verbose") {
		t.Fatal()
	}
}

func TestValueNotFound(t *testing.T) {
	path := writeConfig(t, `model: "foo"`)
	loader := NewLoader([]string{path}, schema)

	var value string
	err := loader.AssignFirst("no_such_key", &value)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	// First degrades to the zero value
	if got := First[int](loader, "no_such_key"); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestSchemaValidation(t *testing.T) {
	path := writeConfig(t, `max_iterations: -1`)
	loader := NewLoader([]string{path}, schema)

	var value int
	if err := loader.AssignFirst("max_iterations", &value); err == nil {
		t.Fatal("expected schema violation")
	}
}

func TestFirstWins(t *testing.T) {
	path1 := writeConfig(t, `model: "first"`)
	path2 := writeConfig(t, `model: "second"`)
	loader := NewLoader([]string{path1, path2}, schema)

	if model := First[string](loader, "model"); model != "first" {
		t.Fatalf("got %v", model)
	}
}

func TestAll(t *testing.T) {
	path1 := writeConfig(t, `model: "first"`)
	path2 := writeConfig(t, `model: "second"`)
	loader := NewLoader([]string{path1, path2}, "")

	var models []string
	for model := range All[string](loader, "model") {
		models = append(models, model)
	}
	if len(models) != 2 || models[0] != "first" || models[1] != "second" {
		t.Fatalf("got %v", models)
	}
}
