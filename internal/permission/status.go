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

package permission

import (
	"errors"
)

// Status is the progress of the most recent remote call on a session.
type Status int

// Session statuses. StatusIdle is the state before the first call.
const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Rejections returned by session operations. None of them reach the service.
var (
	ErrEmptyPartnerID   = errors.New("partner id is required")
	ErrEmptyTemplateKey = errors.New("template key is required")
	ErrEmptyKey         = errors.New("permission key is required")
	ErrBusy             = errors.New("another permission call is in flight")
	ErrNotLoaded        = errors.New("no partner permissions loaded")
	ErrNotDirty         = errors.New("no unsaved permission changes")
	ErrClosed           = errors.New("permission session closed")
)

// ErrStale is returned when a remote call completed after its session was
// closed or switched to another partner. The result is discarded.
var ErrStale = errors.New("stale permission response discarded")
