package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindSqlFiles(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		filepath.Join(dir, "b.sql"),
		filepath.Join(dir, "a.SQL"),
		filepath.Join(dir, "sub", "c.sql"),
		filepath.Join(dir, "readme.txt"),
	}
	for _, f := range files {
		if err := os.MkdirAll(filepath.Dir(f), os.ModePerm); err != nil {
			t.Fatal(err.Error())
		}
		if err := os.WriteFile(f, []byte("select 1"), 0644); err != nil {
			t.Fatal(err.Error())
		}
	}

	got, err := FindSqlFiles(dir)
	if err != nil {
		t.Fatal(err.Error())
	}
	want := []string{
		filepath.Join(dir, "a.SQL"),
		filepath.Join(dir, "b.sql"),
		filepath.Join(dir, "sub", "c.sql"),
	}
	if len(got) != len(want) {
		t.Fatalf("FindSqlFiles: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FindSqlFiles[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestReadSqlFileStripsBOM(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bom.sql")
	if err := os.WriteFile(p, []byte("\ufeffselect 1"), 0644); err != nil {
		t.Fatal(err.Error())
	}
	text, err := ReadSqlFile(p)
	if err != nil {
		t.Fatal(err.Error())
	}
	if text != "select 1" {
		t.Fatalf("ReadSqlFile: %q", text)
	}
}

func TestPathExists(t *testing.T) {
	ok, err := PathExists(t.TempDir())
	if err != nil || !ok {
		t.Fatalf("temp dir should exist: %v", err)
	}
	ok, err = PathExists(filepath.Join(t.TempDir(), "missing"))
	if err != nil || ok {
		t.Fatalf("missing file should not exist: %v", err)
	}
}
