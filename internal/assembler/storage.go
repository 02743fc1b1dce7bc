package assembler

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing/fstest"
)

// Storage abstracts where generated lesson files land. The disk
// implementation is used in production; tests swap in memory.
type Storage interface {
	MkdirAll(dir string) error
	WriteFile(path, content string) error
	Exists(path string) bool

	// DirFS exposes everything under dir for read-only traversal,
	// which is how the quality gate inspects a finished lesson.
	DirFS(dir string) fs.FS
}

// DiskStorage writes lesson files to the local filesystem.
type DiskStorage struct{}

func (DiskStorage) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

func (DiskStorage) WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func (DiskStorage) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (DiskStorage) DirFS(dir string) fs.FS {
	return os.DirFS(dir)
}

// MemStorage keeps written files in a map. Safe for concurrent use.
type MemStorage struct {
	mu    sync.Mutex
	files map[string]string
	dirs  map[string]bool
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		files: make(map[string]string),
		dirs:  make(map[string]bool),
	}
}

func (m *MemStorage) MkdirAll(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for dir != "." && dir != "/" && dir != "" {
		m.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
	return nil
}

func (m *MemStorage) WriteFile(path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
	return nil
}

func (m *MemStorage) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; ok {
		return true
	}
	return m.dirs[path]
}

func (m *MemStorage) DirFS(dir string) fs.FS {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := filepath.ToSlash(dir) + "/"
	fsys := fstest.MapFS{}
	for p, body := range m.files {
		p = filepath.ToSlash(p)
		if rel, ok := strings.CutPrefix(p, prefix); ok {
			fsys[rel] = &fstest.MapFile{Data: []byte(body)}
		}
	}
	return fsys
}

// Read returns a written file's content for assertions.
func (m *MemStorage) Read(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.files[path]
	return c, ok
}

// Files returns all written paths.
func (m *MemStorage) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	return out
}
