// Package workspace keeps a live, in-memory index of header ASTs for the
// files an editor has open, reparsing a file whenever its content changes
// and handing the result to the LSP layer.
package workspace

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/brask/javahdr/java"
	"github.com/brask/javahdr/java/parser"
)

// File is one tracked document: its latest content, the compilation unit
// parsed from it (nil if parsing failed), and the error that parse raised
// (nil if it succeeded).
type File struct {
	Path    string
	Content []byte
	Unit    *java.CompUnit
	Err     error
}

// Workspace is a concurrency-safe map from path to File. Parsing happens
// outside the lock: only the map mutation itself is serialized.
type Workspace struct {
	mu    sync.RWMutex
	files map[string]*File
}

func New() *Workspace {
	return &Workspace{files: make(map[string]*File)}
}

// Update reparses path with the given content and stores the result,
// replacing whatever was tracked for path before.
func (w *Workspace) Update(path string, content []byte) *File {
	cu, err := parser.Parse(path, content)
	f := &File{Path: path, Content: content, Unit: cu, Err: err}

	w.mu.Lock()
	w.files[path] = f
	w.mu.Unlock()

	return f
}

// Load reads path off disk and parses it, as Update would.
func (w *Workspace) Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return w.Update(path, content), nil
}

// Get returns the tracked file at path, or nil if nothing has been loaded
// or opened at that path yet.
func (w *Workspace) Get(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Forget drops a file from the workspace, e.g. on didClose.
func (w *Workspace) Forget(path string) {
	w.mu.Lock()
	delete(w.files, path)
	w.mu.Unlock()
}
