// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package journal records saved permission changes as JSON lines.
package journal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/afero"

	"github.com/retr0h/partnerctl/internal/permission"
)

// Compile-time check that FileRecorder satisfies permission.ChangeRecorder.
var _ permission.ChangeRecorder = (*FileRecorder)(nil)

// FileRecorder appends one JSON line per saved change.
type FileRecorder struct {
	Path string

	appFs  afero.Fs
	mu     sync.Mutex
	file   io.WriteCloser
	writer *bufio.Writer
}

// NewFileRecorder creates a FileRecorder for path on appFs.
func NewFileRecorder(
	appFs afero.Fs,
	path string,
) *FileRecorder {
	return &FileRecorder{
		Path:  path,
		appFs: appFs,
	}
}

// Open opens the journal for appending, creating it if needed.
func (r *FileRecorder) Open(
	_ context.Context,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.appFs.OpenFile(r.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening journal file: %w", err)
	}

	r.file = f
	r.writer = bufio.NewWriter(f)

	return nil
}

// Record writes rec as a single line and flushes it.
func (r *FileRecorder) Record(
	_ context.Context,
	rec permission.ChangeRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writer == nil {
		return fmt.Errorf("journal not opened")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling change record: %w", err)
	}

	if _, err := r.writer.Write(data); err != nil {
		return fmt.Errorf("writing change record: %w", err)
	}

	if err := r.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}

	if err := r.writer.Flush(); err != nil {
		return fmt.Errorf("flushing journal: %w", err)
	}

	return nil
}

// Close flushes the buffer and closes the file.
func (r *FileRecorder) Close(
	_ context.Context,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writer == nil {
		return fmt.Errorf("journal not opened")
	}

	if err := r.writer.Flush(); err != nil {
		return fmt.Errorf("flushing journal: %w", err)
	}

	if err := r.file.Close(); err != nil {
		return fmt.Errorf("closing journal: %w", err)
	}

	r.writer = nil
	r.file = nil

	return nil
}
