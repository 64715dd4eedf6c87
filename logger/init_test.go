package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/philipp01105/flaglog/facade"
)

// TestInit is the only test in this package that registers a logger; the
// facade accepts one registration per process.
func TestInit(t *testing.T) {
	var first, second bytes.Buffer
	l1 := NewBuilder().WithLevel(InfoLevel).WithFlags(0).WithPrefix("one: ").WithOutput(&first).Build()
	l2 := NewBuilder().WithFlags(0).WithPrefix("two: ").WithOutput(&second).Build()

	if err := Init(l1); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !l1.Registered() {
		t.Error("l1 not marked registered")
	}
	if facade.MaxLevel() != InfoLevel {
		t.Errorf("facade.MaxLevel() = %v, want %v", facade.MaxLevel(), InfoLevel)
	}

	err := Init(l2)
	if !errors.Is(err, facade.ErrAlreadyInitialized) {
		t.Fatalf("second Init() error = %v, want ErrAlreadyInitialized", err)
	}
	if l2.Registered() {
		t.Error("l2 marked registered after failed Init")
	}

	facade.Debug("filtered by max level")
	facade.Info("hello, world")
	facade.Flush()

	if first.String() != "one: INFO  hello, world\n" {
		t.Errorf("first = %q", first.String())
	}
	if second.Len() != 0 {
		t.Errorf("second logger received %q", second.String())
	}

	l1.SetLevel(DebugLevel)
	if facade.MaxLevel() != DebugLevel {
		t.Errorf("facade.MaxLevel() did not follow SetLevel: %v", facade.MaxLevel())
	}
	first.Reset()
	facade.Debugf("now %s", "visible")
	if first.String() != "one: DEBUG now visible\n" {
		t.Errorf("first = %q", first.String())
	}
}
