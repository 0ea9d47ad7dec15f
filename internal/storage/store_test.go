package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(testLogger())

	fallback := []record{{Name: "default"}}
	out := fallback
	if store.Load("missing", &out) {
		t.Fatal("Load() reported a hit for a missing key")
	}
	if len(out) != 1 || out[0].Name != "default" {
		t.Fatalf("fallback mutated on miss: %+v", out)
	}

	store.Save("records", []record{{Name: "a", Count: 1}, {Name: "b", Count: 2}})

	var loaded []record
	if !store.Load("records", &loaded) {
		t.Fatal("Load() missed a saved key")
	}
	if len(loaded) != 2 || loaded[1].Name != "b" {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	store.Save("records", []record{{Name: "a", Count: 1}})

	var loaded []record
	if !store.Load("records", &loaded) {
		t.Fatal("Load() missed a saved key")
	}
	if len(loaded) != 1 || loaded[0].Count != 1 {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestFileStoreCorruptDataFallsBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "records.json"), []byte(`{"not":"a list"`), 0644); err != nil {
		t.Fatal(err)
	}

	out := []record{{Name: "fallback"}}
	if store.Load("records", &out) {
		t.Fatal("Load() reported a hit for corrupt data")
	}
	if len(out) != 1 || out[0].Name != "fallback" {
		t.Fatalf("fallback mutated on corrupt data: %+v", out)
	}
}

func TestFileStoreShapeChangeFallsBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	// Valid JSON of the wrong shape decodes-fails the same way corrupt
	// data does: prior data is dropped, the fallback survives.
	if err := os.WriteFile(filepath.Join(dir, "records.json"), []byte(`{"name":"object not array"}`), 0644); err != nil {
		t.Fatal(err)
	}

	var out []record
	if store.Load("records", &out) {
		t.Fatal("Load() reported a hit for a stale shape")
	}
	if out != nil {
		t.Fatalf("fallback mutated on stale shape: %+v", out)
	}
}

func TestFileStoreSaveFailureLeavesPriorState(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, testLogger())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	store.Save("records", []record{{Name: "kept"}})

	// Marshal failure is swallowed; the previous value stays readable.
	store.Save("records", func() {})

	var loaded []record
	if !store.Load("records", &loaded) {
		t.Fatal("prior state lost after failed save")
	}
	if len(loaded) != 1 || loaded[0].Name != "kept" {
		t.Fatalf("loaded = %+v", loaded)
	}
}
