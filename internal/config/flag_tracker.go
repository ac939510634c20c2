package config

import (
	"sync"

	"github.com/spf13/pflag"
)

// Flag names shared by the CLI commands and ApplyOverrides.
const (
	FlagAddr           = "addr"
	FlagProxyPrefix    = "proxy-prefix"
	FlagDataSource     = "source"
	FlagFixtures       = "fixtures"
	FlagDSN            = "dsn"
	FlagModel          = "model"
	FlagChartFormat    = "chart-format"
	FlagOutputDir      = "output-dir"
	FlagMaxConcurrency = "concurrency"
	FlagLogLevel       = "log-level"
	FlagLogFormat      = "log-format"
)

// FlagTracker provides thread-safe tracking of explicitly set flags
type FlagTracker struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewFlagTracker creates a new thread-safe flag tracker
func NewFlagTracker() *FlagTracker {
	return &FlagTracker{
		flags: make(map[string]bool),
	}
}

// NewFlagTrackerFromFlagSet records every flag the user changed in fs
func NewFlagTrackerFromFlagSet(fs *pflag.FlagSet) *FlagTracker {
	ft := NewFlagTracker()
	if fs == nil {
		return ft
	}
	fs.Visit(func(f *pflag.Flag) {
		ft.Set(f.Name)
	})
	return ft
}

// Set marks a flag as explicitly set
func (ft *FlagTracker) Set(flagName string) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.flags[flagName] = true
}

// WasSet checks if a flag was explicitly set
func (ft *FlagTracker) WasSet(flagName string) bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()
	return ft.flags[flagName]
}

// GetAll returns a copy of all flags (safe for concurrent access)
func (ft *FlagTracker) GetAll() map[string]bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	result := make(map[string]bool, len(ft.flags))
	for k, v := range ft.flags {
		result[k] = v
	}
	return result
}

// Count returns the number of explicitly set flags
func (ft *FlagTracker) Count() int {
	ft.mu.RLock()
	defer ft.mu.RUnlock()
	return len(ft.flags)
}

// MergeString merges a string value using thread-safe flag checking
func (ft *FlagTracker) MergeString(base, override, flagName string) string {
	if ft.WasSet(flagName) {
		return override
	}
	return base
}

// MergeInt merges an int value using thread-safe flag checking
func (ft *FlagTracker) MergeInt(base, override int, flagName string) int {
	if ft.WasSet(flagName) {
		return override
	}
	return base
}

// MergeStringSlice merges a string slice using thread-safe flag checking
func (ft *FlagTracker) MergeStringSlice(base, override []string, flagName string) []string {
	if ft.WasSet(flagName) && len(override) > 0 {
		return override
	}
	return base
}

// Overrides holds CLI flag values that may replace config file values
type Overrides struct {
	Addr           string
	ProxyPrefix    string
	DataSource     string
	Fixtures       []string
	DSN            string
	ModelPath      string
	ChartFormat    string
	OutputDir      string
	MaxConcurrency int
	LogLevel       string
	LogFormat      string
}

// ApplyOverrides copies the explicitly set flags onto c and revalidates it
func (c *Config) ApplyOverrides(ft *FlagTracker, o Overrides) error {
	c.Server.Addr = ft.MergeString(c.Server.Addr, o.Addr, FlagAddr)
	c.Server.ProxyPrefix = ft.MergeString(c.Server.ProxyPrefix, o.ProxyPrefix, FlagProxyPrefix)
	c.Data.Source = ft.MergeString(c.Data.Source, o.DataSource, FlagDataSource)
	c.Data.Fixtures = ft.MergeStringSlice(c.Data.Fixtures, o.Fixtures, FlagFixtures)
	c.Data.DSN = ft.MergeString(c.Data.DSN, o.DSN, FlagDSN)
	c.Model.Path = ft.MergeString(c.Model.Path, o.ModelPath, FlagModel)
	c.Charts.Format = ft.MergeString(c.Charts.Format, o.ChartFormat, FlagChartFormat)
	c.Output.Directory = ft.MergeString(c.Output.Directory, o.OutputDir, FlagOutputDir)
	c.Output.MaxConcurrency = ft.MergeInt(c.Output.MaxConcurrency, o.MaxConcurrency, FlagMaxConcurrency)
	c.Logging.Level = ft.MergeString(c.Logging.Level, o.LogLevel, FlagLogLevel)
	c.Logging.Format = ft.MergeString(c.Logging.Format, o.LogFormat, FlagLogFormat)
	return validated(c)
}
