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

package watch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/partnerctl/internal/permission"
	"github.com/retr0h/partnerctl/internal/permission/mocks"
	"github.com/retr0h/partnerctl/internal/watch"
)

type change struct {
	partnerID string
	changes   permission.Changes
}

type WatchPublicTestSuite struct {
	suite.Suite

	mockCtrl    *gomock.Controller
	mockService *mocks.MockService
	ctx         context.Context
	logger      *slog.Logger

	mu      sync.Mutex
	changes []change
}

func (s *WatchPublicTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.changes = nil
}

func (s *WatchPublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *WatchPublicTestSuite) record(
	partnerID string,
	changes permission.Changes,
	_ permission.Map,
) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.changes = append(s.changes, change{partnerID: partnerID, changes: changes})
}

func (s *WatchPublicTestSuite) recorded() []change {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]change(nil), s.changes...)
}

func (s *WatchPublicTestSuite) respond(
	partnerID string,
	perms permission.Map,
) {
	s.mockService.EXPECT().
		GetPartnerPermissions(gomock.Any(), partnerID).
		Return(&permission.PartnerPermissions{Permissions: perms}, nil)
}

func (s *WatchPublicTestSuite) TestPoll() {
	w := watch.New(s.logger, s.mockService, "P1", time.Minute, s.record)

	gomock.InOrder(
		s.mockService.EXPECT().
			GetPartnerPermissions(gomock.Any(), "P1").
			Return(&permission.PartnerPermissions{
				Permissions: permission.Map{"a": {Granted: true}},
			}, nil),
		s.mockService.EXPECT().
			GetPartnerPermissions(gomock.Any(), "P1").
			Return(&permission.PartnerPermissions{
				Permissions: permission.Map{"a": {Granted: true}, "z": {Granted: false}},
			}, nil),
		s.mockService.EXPECT().
			GetPartnerPermissions(gomock.Any(), "P1").
			Return(&permission.PartnerPermissions{
				Permissions: permission.Map{"b": {Granted: true}},
			}, nil),
	)

	s.Require().NoError(w.Poll(s.ctx))
	s.Empty(s.recorded())

	s.Require().NoError(w.Poll(s.ctx))
	s.Empty(s.recorded())

	s.Require().NoError(w.Poll(s.ctx))
	s.Equal([]change{
		{
			partnerID: "P1",
			changes: permission.Changes{
				Granted: []permission.Key{"b"},
				Revoked: []permission.Key{"a"},
			},
		},
	}, s.recorded())
}

func (s *WatchPublicTestSuite) TestPollError() {
	w := watch.New(s.logger, s.mockService, "P1", time.Minute, s.record)

	s.mockService.EXPECT().
		GetPartnerPermissions(gomock.Any(), "P1").
		Return(nil, errors.New("unavailable"))

	err := w.Poll(s.ctx)

	s.ErrorContains(err, "unavailable")
	s.Empty(s.recorded())
}

func (s *WatchPublicTestSuite) TestRetargetDiscardsLatePoll() {
	w := watch.New(s.logger, s.mockService, "P1", time.Minute, s.record)

	started := make(chan struct{})
	release := make(chan struct{})

	s.mockService.EXPECT().
		GetPartnerPermissions(gomock.Any(), "P1").
		DoAndReturn(func(_ context.Context, _ string) (*permission.PartnerPermissions, error) {
			close(started)
			<-release
			return &permission.PartnerPermissions{
				Permissions: permission.Map{"late": {Granted: true}},
			}, nil
		})

	errc := make(chan error, 1)
	go func() { errc <- w.Poll(s.ctx) }()

	<-started
	w.Retarget("P2")
	close(release)

	s.ErrorIs(<-errc, permission.ErrStale)
	s.Equal("P2", w.PartnerID())

	s.respond("P2", permission.Map{"b": {Granted: true}})
	s.respond("P2", permission.Map{"b": {Granted: true}})

	s.Require().NoError(w.Poll(s.ctx))
	s.Require().NoError(w.Poll(s.ctx))
	s.Empty(s.recorded())
}

func (s *WatchPublicTestSuite) TestStartStop() {
	polled := make(chan struct{}, 8)
	s.mockService.EXPECT().
		GetPartnerPermissions(gomock.Any(), "P1").
		DoAndReturn(func(_ context.Context, _ string) (*permission.PartnerPermissions, error) {
			polled <- struct{}{}
			return &permission.PartnerPermissions{}, nil
		}).
		MinTimes(1)

	w := watch.New(s.logger, s.mockService, "P1", time.Second, s.record)
	w.Start()

	select {
	case <-polled:
	case <-time.After(5 * time.Second):
		s.Fail("watcher never polled")
	}

	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()
	w.Stop(ctx)

	s.NoError(ctx.Err())
}

func TestWatchPublicTestSuite(t *testing.T) {
	suite.Run(t, new(WatchPublicTestSuite))
}
