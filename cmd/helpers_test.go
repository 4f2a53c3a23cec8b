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

package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/partnerctl/internal/config"
	"github.com/retr0h/partnerctl/internal/permission"
)

type HelpersTestSuite struct {
	suite.Suite
}

func TestHelpersTestSuite(t *testing.T) {
	suite.Run(t, new(HelpersTestSuite))
}

func (suite *HelpersTestSuite) TestRequestedGrants() {
	tests := []struct {
		name      string
		grant     []string
		revoke    []string
		want      permission.Map
		expectErr string
	}{
		{
			name:   "when grants and revokes are disjoint",
			grant:  []string{"orders.view", "orders.export"},
			revoke: []string{"users.edit"},
			want: permission.Map{
				"orders.view":   {Granted: true},
				"orders.export": {Granted: true},
				"users.edit":    {Granted: false},
			},
		},
		{
			name:  "when only grants are given",
			grant: []string{"dashboard"},
			want:  permission.Map{"dashboard": {Granted: true}},
		},
		{
			name:      "when a key is both granted and revoked",
			grant:     []string{"orders.view"},
			revoke:    []string{"orders.view"},
			expectErr: `permission "orders.view" is both granted and revoked`,
		},
		{
			name:      "when a grant key is malformed",
			grant:     []string{"orders..view"},
			expectErr: `invalid permission key "orders..view"`,
		},
		{
			name:      "when a revoke key is malformed",
			revoke:    []string{"orders view"},
			expectErr: `invalid permission key "orders view"`,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got, err := requestedGrants(tc.grant, tc.revoke)

			if tc.expectErr != "" {
				suite.EqualError(err, tc.expectErr)
				suite.Nil(got)
				return
			}

			suite.NoError(err)
			suite.True(tc.want.Equal(got))
			suite.ElementsMatch(tc.want.Keys(), got.Keys())
		})
	}
}

func (suite *HelpersTestSuite) TestMaskConfig() {
	cfg := config.Config{
		API: config.API{
			Client: config.Client{
				URL: "http://localhost:8080/api/admin",
				Security: config.ClientSecurity{
					BearerToken: "super-secret-token",
				},
			},
		},
		Cache: config.Cache{
			Redis: config.Redis{
				Addr:     "localhost:6379",
				Password: "redis-secret",
			},
		},
	}

	masked, err := maskConfig(cfg)
	suite.Require().NoError(err)

	out, err := json.Marshal(masked)
	suite.Require().NoError(err)

	suite.NotContains(string(out), "super-secret-token")
	suite.NotContains(string(out), "redis-secret")
	suite.Contains(string(out), "http://localhost:8080/api/admin")
	suite.Contains(string(out), "localhost:6379")
	suite.Equal("super-secret-token", cfg.API.Client.Security.BearerToken)
}
