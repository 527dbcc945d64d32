package dispatcher_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/editcore/internal/dispatcher"
	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
)

type namedOp struct {
	name string
}

func (o namedOp) Name() string { return o.name }

func (namedOp) Execute(*execctx.Context) (handler.Result, error) {
	return handler.Continue(), nil
}

func TestRegistryRegisterAndCreate(t *testing.T) {
	r := dispatcher.NewRegistry()
	r.Register("test", handler.Fixed(namedOp{"test"}))

	op, err := r.Create("test", "")
	if err != nil {
		t.Fatal(err)
	}
	if op.Name() != "test" {
		t.Errorf("name = %q, want test", op.Name())
	}
	if !r.Has("test") {
		t.Error("Has(test) = false")
	}
	if r.Count() != 1 {
		t.Errorf("count = %d, want 1", r.Count())
	}
}

func TestRegistryCreateUnknown(t *testing.T) {
	r := dispatcher.NewRegistry()
	_, err := r.Create("bogus", "")
	if !errors.Is(err, dispatcher.ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
	if r.Has("bogus") {
		t.Error("Has(bogus) = true")
	}
}

func TestRegistryRegisterReplaces(t *testing.T) {
	r := dispatcher.NewRegistry()
	r.Register("op", handler.Fixed(namedOp{"first"}))
	r.Register("op", handler.Fixed(namedOp{"second"}))

	op, err := r.Create("op", "")
	if err != nil {
		t.Fatal(err)
	}
	if op.Name() != "second" {
		t.Errorf("name = %q, want the last registration", op.Name())
	}
}

func TestRegistryAlias(t *testing.T) {
	r := dispatcher.NewRegistry()
	r.Register("long_name", handler.Fixed(namedOp{"long_name"}))

	if err := r.Alias("ln", "long_name"); err != nil {
		t.Fatal(err)
	}
	if err := r.Alias("x", "missing"); !errors.Is(err, dispatcher.ErrUnknownOperation) {
		t.Errorf("alias to a missing name: expected ErrUnknownOperation, got %v", err)
	}

	canonical, ok := r.Resolve("ln")
	if !ok || canonical != "long_name" {
		t.Errorf("Resolve(ln) = %q, %v", canonical, ok)
	}
	a, _ := r.Create("ln", "")
	b, _ := r.Create("long_name", "")
	if a != b {
		t.Errorf("alias built %#v, canonical built %#v", a, b)
	}
	if r.Count() != 1 {
		t.Errorf("aliases must not count as operations, count = %d", r.Count())
	}
}

func TestRegistryUnregisterRemovesAliases(t *testing.T) {
	r := dispatcher.NewRegistry()
	r.Register("op", handler.Fixed(namedOp{"op"}))
	_ = r.Alias("o", "op")

	r.Unregister("op")
	if r.Has("op") || r.Has("o") {
		t.Error("unregister left the operation or its alias reachable")
	}
	if len(r.Aliases()) != 0 {
		t.Errorf("aliases = %v", r.Aliases())
	}
}

func TestRegistryList(t *testing.T) {
	r := dispatcher.NewRegistry()
	r.RegisterAll(map[string]handler.Factory{
		"b_op": handler.Fixed(namedOp{"b_op"}),
		"a_op": handler.Fixed(namedOp{"a_op"}),
	})
	_ = r.Alias("z", "a_op")

	want := []string{"a_op", "b_op", "z"}
	if diff := cmp.Diff(want, r.List()); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := dispatcher.NewDefaultRegistry()

	names := r.List()
	for _, name := range []string{
		"move_left", "select_word", "select_object", "insert_char",
		"delete_line", "paste", "find_next", "replace_all", "undo",
		"redo", "switch_mode", "command", "exit", "h", "dd", ":",
	} {
		if !slices.Contains(names, name) {
			t.Errorf("default registry is missing %q", name)
		}
	}

	if diff := cmp.Diff(dispatcher.DefaultAliases, r.Aliases()); diff != "" {
		t.Errorf("aliases mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryFactoryErrors(t *testing.T) {
	r := dispatcher.NewDefaultRegistry()

	if _, err := r.Create("insert_char", "ab"); !errors.Is(err, dispatcher.ErrInvalidParameter) {
		t.Errorf("insert_char ab: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := r.Create(":", ""); !errors.Is(err, dispatcher.ErrInvalidParameter) {
		t.Errorf(": with no command: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := r.Create("bogus", ""); !errors.Is(err, dispatcher.ErrUnknownOperation) {
		t.Errorf("bogus: expected ErrUnknownOperation, got %v", err)
	}
}
