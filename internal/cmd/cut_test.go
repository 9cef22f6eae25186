package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestRunCut(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.tsv")
	if err := os.WriteFile(in, []byte("id\tname\tage\n1\tann\t30\n2\tbob\t40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("numeric fields", func(t *testing.T) {
		var out bytes.Buffer
		if err := runCut(&out, "3,1", "\t", false, []string{in}); err != nil {
			t.Fatalf("run: %v", err)
		}
		want := "age\tid\n30\t1\n40\t2\n"
		if out.String() != want {
			t.Errorf("expected %q, got %q", want, out.String())
		}
	})

	t.Run("named fields with header", func(t *testing.T) {
		var out bytes.Buffer
		if err := runCut(&out, "name", "\t", true, []string{in}); err != nil {
			t.Fatalf("run: %v", err)
		}
		want := "name\nann\nbob\n"
		if out.String() != want {
			t.Errorf("expected %q, got %q", want, out.String())
		}
	})

	t.Run("header dropped from later inputs", func(t *testing.T) {
		var out bytes.Buffer
		if err := runCut(&out, "id", "\t", true, []string{in, in}); err != nil {
			t.Fatalf("run: %v", err)
		}
		want := "id\n1\n2\n1\n2\n"
		if out.String() != want {
			t.Errorf("expected %q, got %q", want, out.String())
		}
	})

	t.Run("field out of range", func(t *testing.T) {
		var out bytes.Buffer
		if err := runCut(&out, "9", "\t", false, []string{in}); err == nil {
			t.Fatal("expected an error for a missing field")
		}
	})
}
