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

package journal

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/retr0h/partnerctl/internal/permission"
)

// maxLine bounds a single journal line.
const maxLine = 1 << 20

// Read decodes every record in r. When partnerID is non-empty only that
// partner's records are returned.
func Read(
	r io.Reader,
	partnerID string,
) ([]permission.ChangeRecord, error) {
	records := []permission.ChangeRecord{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		var rec permission.ChangeRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decoding journal line %d: %w", line, err)
		}

		if partnerID != "" && rec.PartnerID != partnerID {
			continue
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading journal: %w", err)
	}

	return records, nil
}

// ReadFile reads the journal at path. A missing file yields no records.
func ReadFile(
	appFs afero.Fs,
	path string,
	partnerID string,
) ([]permission.ChangeRecord, error) {
	exists, err := afero.Exists(appFs, path)
	if err != nil {
		return nil, fmt.Errorf("checking journal file: %w", err)
	}
	if !exists {
		return []permission.ChangeRecord{}, nil
	}

	f, err := appFs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f, partnerID)
}
