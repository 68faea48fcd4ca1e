package catalog

import (
	"path/filepath"
	"testing"
)

func TestCacheRead_Missing(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "list.json"))

	data, ok, err := c.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || data != nil {
		t.Errorf("Read() = %q, %v; want nil, false", data, ok)
	}
}

func TestCacheWriteRead(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "nested", "dir", "list.json"))
	want := "{\n  \"a\": {}\n}\n"

	if err := c.Write([]byte(want)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, ok, err := c.Read()
	if err != nil || !ok {
		t.Fatalf("Read() ok=%v err=%v", ok, err)
	}
	if string(data) != want {
		t.Errorf("Read() = %q, want %q", data, want)
	}

	info, err := c.Stat()
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.Exists {
		t.Error("Stat().Exists = false, want true")
	}
	if info.Size != int64(len(want)) {
		t.Errorf("Stat().Size = %d, want %d", info.Size, len(want))
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "list.json"))

	// Clearing a missing cache is fine.
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}

	if err := c.Write([]byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	info, err := c.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if info.Exists {
		t.Error("cache still exists after Clear")
	}
}
