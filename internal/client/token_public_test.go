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

package client_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/partnerctl/internal/client"
)

type TokenPublicTestSuite struct {
	suite.Suite
}

func (s *TokenPublicTestSuite) sign(
	claims jwt.RegisteredClaims,
) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("signing-key"))
	s.Require().NoError(err)

	return token
}

func (s *TokenPublicTestSuite) TestTokenExpiry() {
	expiry := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		token      string
		wantOK     bool
		wantErr    bool
		wantExpiry time.Time
	}{
		{
			name: "when token has an expiry",
			token: s.sign(jwt.RegisteredClaims{
				Subject:   "ops@example.com",
				ExpiresAt: jwt.NewNumericDate(expiry),
			}),
			wantOK:     true,
			wantExpiry: expiry,
		},
		{
			name:   "when token has no expiry",
			token:  s.sign(jwt.RegisteredClaims{Subject: "ops@example.com"}),
			wantOK: false,
		},
		{
			name:    "when token is not a jwt",
			token:   "opaque-token",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, ok, err := client.TokenExpiry(tt.token)

			if tt.wantErr {
				s.Error(err)
				return
			}

			s.NoError(err)
			s.Equal(tt.wantOK, ok)
			if tt.wantOK {
				s.True(tt.wantExpiry.Equal(got))
			}
		})
	}
}

func TestTokenPublicTestSuite(t *testing.T) {
	suite.Run(t, new(TokenPublicTestSuite))
}
