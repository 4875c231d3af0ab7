package xlog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(Config{Level: WarnLevel, Output: &buf})

	l.Info("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("buf = %q, want empty: Info below WarnLevel must be filtered", buf.String())
	}

	l.Warn("should appear", "key", "value")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("buf = %q, want it to contain the warn message", buf.String())
	}
}

func TestLogger_FatalCallsExitFunc(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(Config{Level: InfoLevel, Output: &buf})

	called := false
	old := fatalExitFunc
	fatalExitFunc = func() { called = true }
	defer func() { fatalExitFunc = old }()

	l.Fatal("boom")
	if !called {
		t.Fatalf("fatalExitFunc was not invoked")
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Fatalf("buf = %q, want it to contain the fatal message", buf.String())
	}
}
