package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileBlobRoundtrip(t *testing.T) {
	blob := NewFile(filepath.Join(t.TempDir(), "state.json"))

	if _, ok, err := blob.Read(); err != nil || ok {
		t.Fatalf("Read on missing file: ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	payload := []byte(`{"version": 12}`)
	if err := blob.Write(payload); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, ok, err := blob.Read()
	if err != nil || !ok {
		t.Fatalf("Read: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Read = %s, want %s", data, payload)
	}
}

func TestFileBlobWriteCreatesParentDirs(t *testing.T) {
	blob := NewFile(filepath.Join(t.TempDir(), "nested", "deeper", "state.json"))

	if err := blob.Write([]byte("{}")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, ok, err := blob.Read(); err != nil || !ok {
		t.Fatalf("Read after nested write: ok=%v err=%v", ok, err)
	}
}

func TestFileBlobWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	blob := NewFile(filepath.Join(dir, "state.json"))

	for i := 0; i < 3; i++ {
		if err := blob.Write([]byte(`{}`)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestFileBlobDelete(t *testing.T) {
	blob := NewFile(filepath.Join(t.TempDir(), "state.json"))

	if err := blob.Delete(); err != nil {
		t.Fatalf("Delete on missing file: %v", err)
	}

	if err := blob.Write([]byte("{}")); err != nil {
		t.Fatal(err)
	}
	if err := blob.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := blob.Read(); ok {
		t.Error("file still present after delete")
	}
}
