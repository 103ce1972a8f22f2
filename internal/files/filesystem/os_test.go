package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree lays out files under a fresh temp dir, creating parent
// directories as needed. Keys are slash paths, values are contents.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		target := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return dir
}

func TestOSFileSystem_Open(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "x"})
	provider := NewOSFileSystem()

	t.Run("directory", func(t *testing.T) {
		d, err := provider.Open(root)
		if err != nil {
			t.Fatalf("Open(%s) error = %v", root, err)
		}
		if !filepath.IsAbs(d.Path()) {
			t.Errorf("Path() = %q, want absolute", d.Path())
		}
	})

	t.Run("missing path", func(t *testing.T) {
		if _, err := provider.Open(filepath.Join(root, "nope")); err == nil {
			t.Error("Open on a missing path should fail")
		}
	})

	t.Run("regular file", func(t *testing.T) {
		if _, err := provider.Open(filepath.Join(root, "a.txt")); err == nil {
			t.Error("Open on a file should fail")
		}
	})
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	root := writeTree(t, map[string]string{"note.txt": "contents here"})
	provider := NewOSFileSystem()

	got, err := provider.ReadFile(filepath.Join(root, "note.txt"))
	if err != nil {
		t.Fatalf("ReadFile error = %v", err)
	}
	if string(got) != "contents here" {
		t.Errorf("ReadFile = %q, want %q", got, "contents here")
	}

	if _, err := provider.ReadFile(filepath.Join(root, "missing.txt")); err == nil {
		t.Error("ReadFile on a missing file should fail")
	}
}

func TestOSFileSystem_ReadDir(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":     "a",
		"b.txt":     "b",
		"sub/c.txt": "c",
	})

	infos, err := NewOSFileSystem().ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir error = %v", err)
	}

	names := make(map[string]bool, len(infos))
	for _, info := range infos {
		names[info.Name()] = true
	}
	for _, want := range []string{"a.txt", "b.txt", "sub"} {
		if !names[want] {
			t.Errorf("ReadDir missing %q in %v", want, names)
		}
	}
	if len(infos) != 3 {
		t.Errorf("ReadDir returned %d entries, want 3", len(infos))
	}
}

func TestOSFileSystem_Stat(t *testing.T) {
	root := writeTree(t, map[string]string{"f.txt": "12345"})
	provider := NewOSFileSystem()

	info, err := provider.Stat(filepath.Join(root, "f.txt"))
	if err != nil {
		t.Fatalf("Stat error = %v", err)
	}
	if info.IsDir() || info.Size() != 5 {
		t.Errorf("Stat = dir %v size %d, want regular file of 5 bytes", info.IsDir(), info.Size())
	}

	info, err = provider.Stat(root)
	if err != nil {
		t.Fatalf("Stat error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat on the root should report a directory")
	}

	if _, err := provider.Stat(filepath.Join(root, "nope")); err == nil {
		t.Error("Stat on a missing path should fail")
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.txt":     "top",
		"sub/b.txt": "nested",
	})

	d, err := NewOSFileSystem().Open(root)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}

	found := map[string]bool{}
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !f.Info().IsDir() {
			found[filepath.ToSlash(f.RelativePath())] = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error = %v", err)
	}

	if len(found) != 2 || !found["a.txt"] || !found["sub/b.txt"] {
		t.Errorf("Walk found %v, want a.txt and sub/b.txt", found)
	}
}

func TestOSFileSystem_Walk_CallbackPanicBecomesError(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "x"})

	d, err := NewOSFileSystem().Open(root)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}

	err = d.Walk(func(f File, walkErr error) error {
		panic("callback exploded")
	})
	if err == nil {
		t.Error("Walk should convert a callback panic into an error")
	}
}

func TestOSFile_ReadContent(t *testing.T) {
	root := writeTree(t, map[string]string{"content.txt": "read through walk"})

	d, err := NewOSFileSystem().Open(root)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}

	var got string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.Info().IsDir() {
			return nil
		}
		content, readErr := f.ReadContent()
		if readErr != nil {
			return readErr
		}
		got = string(content)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error = %v", err)
	}
	if got != "read through walk" {
		t.Errorf("ReadContent = %q, want %q", got, "read through walk")
	}
}
