package fsutil

import (
	"io"
	"testing"
)

func TestOSFileSystem_Exists(t *testing.T) {
	fs := OSFileSystem{}

	if !fs.Exists("filesystem.go") {
		t.Error("expected filesystem.go to exist")
	}

	if fs.Exists("nonexistent_file_xyz.go") {
		t.Error("expected nonexistent file to not exist")
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	fs := OSFileSystem{}

	data, err := fs.ReadFile("filesystem.go")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if len(data) == 0 {
		t.Error("expected non-empty file content")
	}
}

func TestMemoryFileSystem_WriteAndRead(t *testing.T) {
	mfs := NewMemoryFileSystem()

	testData := []byte("ncols 2\nnrows 1\n0 1\n")
	err := mfs.WriteFile("/grids/harvest.asc", testData, 0644)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := mfs.ReadFile("/grids/harvest.asc")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestMemoryFileSystem_CreateAndWrite(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/out.csv")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err = w.Write([]byte("biomass,forest_type\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err = w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := mfs.ReadFile("/out.csv")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != "biomass,forest_type\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestMemoryFileSystem_Open(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if _, err := mfs.Open("/missing.asc"); err == nil {
		t.Error("expected error opening missing file")
	}

	if err := mfs.WriteFile("/a.asc", []byte("abc"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := mfs.Open("/a.asc")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("expected abc, got %q", data)
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 3 {
		t.Errorf("size = %d, want 3", info.Size())
	}
}

func TestMemoryFileSystem_StatAndMkdirAll(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if _, err := mfs.Stat("/nope"); err == nil {
		t.Error("expected stat error for missing path")
	}

	if err := mfs.MkdirAll("/out/reports", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	info, err := mfs.Stat("/out/reports")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected directory")
	}

	// Parents are created too.
	if !mfs.Exists("/out") {
		t.Error("expected parent directory to exist")
	}
}
