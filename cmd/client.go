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
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/retr0h/partnerctl/internal/cache"
	"github.com/retr0h/partnerctl/internal/cli"
	"github.com/retr0h/partnerctl/internal/client"
	"github.com/retr0h/partnerctl/internal/permission"
	"github.com/retr0h/partnerctl/internal/telemetry"
)

var (
	service        permission.Service
	templateCache  *cache.TemplateService
	redisClient    *redis.Client
	tracerShutdown telemetry.ShutdownFunc
)

// clientCmd represents the client command.
var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "The client subcommand",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		var err error
		tracerShutdown, err = telemetry.InitTracer(
			cmd.Context(),
			"partnerctl",
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize tracer", err)
		}

		logger.Debug(
			"client configuration",
			slog.String("config_file", viper.ConfigFileUsed()),
			slog.Bool("debug", appConfig.Debug),
			slog.String("api.client.url", appConfig.API.Client.URL),
			slog.Duration("api.client.timeout", appConfig.API.Client.Timeout),
			slog.Int("api.client.retries", appConfig.API.Client.Retries),
		)

		warnOnTokenExpiry(appConfig.API.Client.Security.BearerToken)

		service = client.New(logger, appConfig)

		if addr := appConfig.Cache.Redis.Addr; addr != "" {
			redisClient, err = cache.NewRedisClient(cmd.Context(), appConfig.Cache.Redis)
			if err != nil {
				logger.Warn("role template cache disabled",
					slog.String("redis.addr", addr),
					slog.String("error", err.Error()),
				)
				return
			}

			templateCache = cache.New(logger, service, redisClient, appConfig.Cache.TTL)
			service = templateCache
		}
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if redisClient != nil {
			_ = redisClient.Close()
		}

		if tracerShutdown != nil {
			_ = tracerShutdown(context.Background())
		}
	},
}

// warnOnTokenExpiry logs when the bearer token is a JWT that has expired.
// Opaque tokens are left to the server.
func warnOnTokenExpiry(
	token string,
) {
	expiry, ok, err := client.TokenExpiry(token)
	if err != nil || !ok {
		return
	}

	if time.Now().After(expiry) {
		logger.Warn("bearer token has expired",
			slog.Time("expired_at", expiry),
		)
	}
}

func init() {
	rootCmd.AddCommand(clientCmd)

	clientCmd.PersistentFlags().
		StringP("url", "", "http://localhost:8080/api/admin", "URL the client will connect to")

	_ = viper.BindPFlag("api.client.url", clientCmd.PersistentFlags().Lookup("url"))
}
