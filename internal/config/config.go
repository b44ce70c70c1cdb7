// Copyright 2019 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the blogql server configuration from command-line
// flags, BLOGQL_* environment variables and an optional config file.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"
	"zombiezen.com/go/blogql/internal/telemetry"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "BLOGQL"

// Keys of the configuration values. Each is also the name of a flag.
const (
	KeyConfig        = "config"
	KeyAddr          = "addr"
	KeyTimeout       = "timeout"
	KeyMaxBodyBytes  = "max-body-bytes"
	KeyPretty        = "pretty"
	KeyMaxDepth      = "max-depth"
	KeyIntrospection = "introspection"
	KeyTracer        = "tracer"
	KeyOTLPEndpoint  = "otlp-endpoint"
	KeyServiceName   = "service-name"
	KeyMetricsPath   = "metrics-path"
)

// Config is the server configuration.
type Config struct {
	Addr          string
	Timeout       time.Duration
	MaxBodyBytes  int64
	Pretty        bool
	MaxDepth      int
	Introspection bool
	Tracer        string
	OTLPEndpoint  string
	ServiceName   string
	MetricsPath   string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Addr:          ":4000",
		Timeout:       10 * time.Second,
		MaxBodyBytes:  1 << 20,
		Introspection: true,
		Tracer:        telemetry.TracerNone,
		ServiceName:   "blogql",
		MetricsPath:   "/metrics",
	}
}

// RegisterFlags adds a flag for each configuration value to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()
	fs.String(KeyConfig, "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	fs.String(KeyAddr, def.Addr, "HTTP listen address")
	fs.Duration(KeyTimeout, def.Timeout, "Per-request execution timeout (0 disables)")
	fs.Int64(KeyMaxBodyBytes, def.MaxBodyBytes, "Maximum request body size in bytes (0 disables)")
	fs.Bool(KeyPretty, def.Pretty, "Indent JSON responses")
	fs.Int(KeyMaxDepth, def.MaxDepth, "Maximum query nesting depth (0 disables)")
	fs.Bool(KeyIntrospection, def.Introspection, "Allow introspection queries")
	fs.String(KeyTracer, def.Tracer, "GraphQL tracer, one of [none, opencensus, otel]")
	fs.String(KeyOTLPEndpoint, def.OTLPEndpoint, "OTLP/gRPC collector endpoint for the otel tracer")
	fs.String(KeyServiceName, def.ServiceName, "Service name reported to tracing backends")
	fs.String(KeyMetricsPath, def.MetricsPath, "HTTP path serving Prometheus metrics (empty disables)")
}

// NewViper returns a viper instance bound to fs and the environment.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, xerrors.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// Load reads the configuration from v, first reading the config file named by
// the "config" key if it is set.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, xerrors.Errorf("load config: %w", err)
		}
	}
	def := Default()
	for key, value := range map[string]interface{}{
		KeyAddr:          def.Addr,
		KeyTimeout:       def.Timeout,
		KeyMaxBodyBytes:  def.MaxBodyBytes,
		KeyPretty:        def.Pretty,
		KeyMaxDepth:      def.MaxDepth,
		KeyIntrospection: def.Introspection,
		KeyTracer:        def.Tracer,
		KeyOTLPEndpoint:  def.OTLPEndpoint,
		KeyServiceName:   def.ServiceName,
		KeyMetricsPath:   def.MetricsPath,
	} {
		v.SetDefault(key, value)
	}
	cfg := Config{
		Addr:          v.GetString(KeyAddr),
		Timeout:       v.GetDuration(KeyTimeout),
		MaxBodyBytes:  v.GetInt64(KeyMaxBodyBytes),
		Pretty:        v.GetBool(KeyPretty),
		MaxDepth:      v.GetInt(KeyMaxDepth),
		Introspection: v.GetBool(KeyIntrospection),
		Tracer:        v.GetString(KeyTracer),
		OTLPEndpoint:  v.GetString(KeyOTLPEndpoint),
		ServiceName:   v.GetString(KeyServiceName),
		MetricsPath:   v.GetString(KeyMetricsPath),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, xerrors.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid value in cfg.
func (cfg Config) Validate() error {
	switch cfg.Tracer {
	case telemetry.TracerNone, telemetry.TracerOpenCensus, telemetry.TracerOTel:
	default:
		return xerrors.Errorf("unknown tracer %q", cfg.Tracer)
	}
	if cfg.Timeout < 0 {
		return xerrors.Errorf("negative timeout %v", cfg.Timeout)
	}
	if cfg.MaxBodyBytes < 0 {
		return xerrors.Errorf("negative max body bytes %d", cfg.MaxBodyBytes)
	}
	if cfg.MaxDepth < 0 {
		return xerrors.Errorf("negative max depth %d", cfg.MaxDepth)
	}
	if cfg.MetricsPath != "" && !strings.HasPrefix(cfg.MetricsPath, "/") {
		return xerrors.Errorf("metrics path %q must start with /", cfg.MetricsPath)
	}
	return nil
}
