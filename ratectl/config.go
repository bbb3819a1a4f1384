/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl

import (
	"fmt"
	"time"

	"github.com/acronis/go-callkit/config"
)

const (
	cfgKeyInterval  = "interval"
	cfgKeyImmediate = "immediate"
	cfgKeyLeading   = "leading"
	cfgKeyTrailing  = "trailing"
)

// DebounceConfig is a configuration of Debouncer.
type DebounceConfig struct {
	Interval  config.TimeDuration `mapstructure:"interval" yaml:"interval" json:"interval"`
	Immediate bool                `mapstructure:"immediate" yaml:"immediate" json:"immediate"`

	keyPrefix string
}

var _ config.Config = (*DebounceConfig)(nil)
var _ config.KeyPrefixProvider = (*DebounceConfig)(nil)

// NewDebounceConfig creates a DebounceConfig which keys live under the given prefix.
func NewDebounceConfig(keyPrefix string) *DebounceConfig {
	return &DebounceConfig{keyPrefix: keyPrefix}
}

// KeyPrefix implements config.KeyPrefixProvider.
func (c *DebounceConfig) KeyPrefix() string {
	return c.keyPrefix
}

// SetProviderDefaults implements config.Config.
func (c *DebounceConfig) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyInterval, time.Duration(0))
	dp.SetDefault(cfgKeyImmediate, false)
}

// Set implements config.Config.
func (c *DebounceConfig) Set(dp config.DataProvider) error {
	interval, err := getInterval(dp)
	if err != nil {
		return err
	}
	c.Interval = config.TimeDuration(interval)
	c.Immediate, err = dp.GetBool(cfgKeyImmediate)
	return err
}

// ThrottleConfig is a configuration of Throttler.
type ThrottleConfig struct {
	Interval config.TimeDuration `mapstructure:"interval" yaml:"interval" json:"interval"`
	Leading  bool                `mapstructure:"leading" yaml:"leading" json:"leading"`
	Trailing bool                `mapstructure:"trailing" yaml:"trailing" json:"trailing"`

	keyPrefix string
}

var _ config.Config = (*ThrottleConfig)(nil)
var _ config.KeyPrefixProvider = (*ThrottleConfig)(nil)

// NewThrottleConfig creates a ThrottleConfig which keys live under the given prefix.
func NewThrottleConfig(keyPrefix string) *ThrottleConfig {
	return &ThrottleConfig{keyPrefix: keyPrefix}
}

// NewDefaultThrottleConfig creates a ThrottleConfig with leading and trailing invocations enabled.
func NewDefaultThrottleConfig(interval time.Duration) *ThrottleConfig {
	return &ThrottleConfig{Interval: config.TimeDuration(interval), Leading: true, Trailing: true}
}

// KeyPrefix implements config.KeyPrefixProvider.
func (c *ThrottleConfig) KeyPrefix() string {
	return c.keyPrefix
}

// SetProviderDefaults implements config.Config.
func (c *ThrottleConfig) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyInterval, time.Duration(0))
	dp.SetDefault(cfgKeyLeading, true)
	dp.SetDefault(cfgKeyTrailing, true)
}

// Set implements config.Config.
func (c *ThrottleConfig) Set(dp config.DataProvider) error {
	interval, err := getInterval(dp)
	if err != nil {
		return err
	}
	c.Interval = config.TimeDuration(interval)
	if c.Leading, err = dp.GetBool(cfgKeyLeading); err != nil {
		return err
	}
	c.Trailing, err = dp.GetBool(cfgKeyTrailing)
	return err
}

func getInterval(dp config.DataProvider) (time.Duration, error) {
	interval, err := dp.GetDuration(cfgKeyInterval)
	if err != nil {
		return 0, err
	}
	if interval < 0 {
		return 0, dp.WrapKeyErr(cfgKeyInterval, fmt.Errorf("must be >= 0, got %s", interval))
	}
	return interval, nil
}

// NewDebouncerFromConfig creates a Debouncer configured by cfg.
func NewDebouncerFromConfig[A, R any](fn func(A) R, cfg *DebounceConfig, opts CommonOpts) *Debouncer[A, R] {
	return NewDebouncerWithOpts(fn, cfg.Interval.Duration(), DebouncerOpts{CommonOpts: opts, Immediate: cfg.Immediate})
}

// NewThrottlerFromConfig creates a Throttler configured by cfg.
func NewThrottlerFromConfig[A, R any](fn func(A) R, cfg *ThrottleConfig, opts CommonOpts) *Throttler[A, R] {
	return NewThrottlerWithOpts(fn, cfg.Interval.Duration(), ThrottlerOpts{
		CommonOpts: opts,
		NoLeading:  !cfg.Leading,
		NoTrailing: !cfg.Trailing,
	})
}
