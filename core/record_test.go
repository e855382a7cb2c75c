package core

import (
	"strings"
	"testing"
)

func TestRecordPool(t *testing.T) {
	r1 := GetRecord()
	if r1 == nil {
		t.Fatal("GetRecord() returned nil")
	}
	if r1.Time.IsZero() {
		t.Error("Expected GetRecord to stamp the time")
	}

	r1.Message = "test"
	r1.Target = "app::db"
	PutRecord(r1)

	r2 := GetRecord()
	if r2.Message != "" || r2.Target != "" {
		t.Errorf("Expected clean record after pool reset, got %+v", r2)
	}
	PutRecord(r2)
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(0)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}
	if caller.ShortFile != "record_test.go" {
		t.Errorf("Expected record_test.go, got %q", caller.ShortFile)
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if !strings.HasSuffix(caller.Function, "TestGetCaller") {
		t.Errorf("Unexpected function %q", caller.Function)
	}
	if caller.Module != "github.com/philipp01105/simplelog/core" {
		t.Errorf("Unexpected module %q", caller.Module)
	}
}

func TestPackagePath(t *testing.T) {
	tests := []struct {
		fn   string
		want string
	}{
		{"", ""},
		{"main.main", "main"},
		{"github.com/a/b.Func", "github.com/a/b"},
		{"github.com/a/b.(*T).Method", "github.com/a/b"},
		{"github.com/a/b.v2.Func.func1", "github.com/a/b"},
		{"noDot", "noDot"},
	}
	for _, tt := range tests {
		if got := PackagePath(tt.fn); got != tt.want {
			t.Errorf("PackagePath(%q) = %q, want %q", tt.fn, got, tt.want)
		}
	}
}

func TestGoroutineID(t *testing.T) {
	id := GoroutineID()
	if id == 0 {
		t.Fatal("GoroutineID() returned 0")
	}

	other := make(chan uint64)
	go func() { other <- GoroutineID() }()
	if got := <-other; got == id || got == 0 {
		t.Errorf("Expected a distinct non-zero id, got %d (self %d)", got, id)
	}
}

func BenchmarkGetRecord(b *testing.B) {
	for i := 0; i < b.N; i++ {
		r := GetRecord()
		PutRecord(r)
	}
}
