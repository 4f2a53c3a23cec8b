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

package config

import "time"

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	API       API       `mapstructure:"api"       mask:"struct"`
	Menu      Menu      `mapstructure:"menu"`
	Cache     Cache     `mapstructure:"cache"     mask:"struct"`
	Journal   Journal   `mapstructure:"journal"`
	Watch     Watch     `mapstructure:"watch"`
	Telemetry Telemetry `mapstructure:"telemetry"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter"      validate:"omitempty,oneof=none stdout otlp"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// API configuration settings.
type API struct {
	Client `mapstructure:"client" mask:"struct"`
}

// Client configuration settings for the admin permission service.
type Client struct {
	// URL is the base URL of the admin API (e.g., "http://localhost:8080/api/admin").
	URL string `mapstructure:"url"     validate:"required,url"`
	// Timeout bounds each HTTP request.
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`
	// Retries is how many times an idempotent request is retried.
	Retries int `mapstructure:"retries" validate:"min=0,max=10"`
	// Security contains security-related configuration for the client, such as access tokens.
	Security ClientSecurity `mapstructure:"security" mask:"struct"`
}

// ClientSecurity represents security-related settings for the client.
type ClientSecurity struct {
	// BearerToken is the JWT presented to the admin API.
	BearerToken string `mapstructure:"bearer_token" validate:"required" mask:"password"`
}

// Menu configuration settings.
type Menu struct {
	// File is a YAML menu registry. The built-in menu is used when empty.
	File string `mapstructure:"file"`
}

// Cache configuration settings for the role template cache.
type Cache struct {
	Redis Redis `mapstructure:"redis" mask:"struct"`
	// TTL is how long role templates stay cached.
	TTL time.Duration `mapstructure:"ttl"   validate:"min=0"`
}

// Redis connection settings. Caching is disabled when Addr is empty.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password" mask:"password"`
	DB       int    `mapstructure:"db"       validate:"min=0"`
}

// Journal configuration settings.
type Journal struct {
	// File receives one JSON line per saved change. Disabled when empty.
	File string `mapstructure:"file"`
}

// Watch configuration settings.
type Watch struct {
	// Interval between permission polls.
	Interval time.Duration `mapstructure:"interval" validate:"min=0"`
}
