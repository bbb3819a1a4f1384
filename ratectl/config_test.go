/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package ratectl_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acronis/go-callkit/config"
	"github.com/acronis/go-callkit/ratectl"
	"github.com/acronis/go-callkit/ratectl/ratectltest"
)

func TestConfig_Load(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		debounceCfg := ratectl.NewDebounceConfig("search")
		throttleCfg := ratectl.NewThrottleConfig("resize")
		err := config.NewLoader(config.NewViperAdapter()).LoadFromReader(bytes.NewBufferString("{}"), config.DataTypeJSON,
			debounceCfg, throttleCfg)
		require.NoError(t, err)

		require.Zero(t, debounceCfg.Interval.Duration())
		require.False(t, debounceCfg.Immediate)
		require.Zero(t, throttleCfg.Interval.Duration())
		require.True(t, throttleCfg.Leading)
		require.True(t, throttleCfg.Trailing)
	})

	t.Run("values from yaml", func(t *testing.T) {
		yamlData := `
search:
  interval: 300ms
  immediate: true
resize:
  interval: 1s
  leading: false
`
		debounceCfg := ratectl.NewDebounceConfig("search")
		throttleCfg := ratectl.NewThrottleConfig("resize")
		err := config.NewLoader(config.NewViperAdapter()).LoadFromReader(bytes.NewBufferString(yamlData), config.DataTypeYAML,
			debounceCfg, throttleCfg)
		require.NoError(t, err)

		require.Equal(t, 300*time.Millisecond, debounceCfg.Interval.Duration())
		require.True(t, debounceCfg.Immediate)
		require.Equal(t, time.Second, throttleCfg.Interval.Duration())
		require.False(t, throttleCfg.Leading)
		require.True(t, throttleCfg.Trailing)
	})

	t.Run("negative interval", func(t *testing.T) {
		throttleCfg := ratectl.NewThrottleConfig("resize")
		err := config.NewLoader(config.NewViperAdapter()).LoadFromReader(
			bytes.NewBufferString(`{"resize":{"interval":"-1s"}}`), config.DataTypeJSON, throttleCfg)
		require.EqualError(t, err, "resize.interval: must be >= 0, got -1s")
	})

	t.Run("invalid flag", func(t *testing.T) {
		debounceCfg := ratectl.NewDebounceConfig("")
		err := config.NewLoader(config.NewViperAdapter()).LoadFromReader(
			bytes.NewBufferString(`{"immediate":"sometimes"}`), config.DataTypeJSON, debounceCfg)
		require.ErrorContains(t, err, "immediate")
	})
}

func TestNewThrottlerFromConfig(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	cfg := ratectl.NewDefaultThrottleConfig(time.Second)
	cfg.Leading = false
	th := ratectl.NewThrottlerFromConfig(rec.fn, cfg, ratectl.CommonOpts{Scheduler: s})

	th.Invoke(1)
	require.Empty(t, rec.Calls())
	s.Advance(time.Second)
	require.Equal(t, []call{{arg: 1, at: time.Second}}, rec.Calls())
}

func TestNewDebouncerFromConfig(t *testing.T) {
	s := ratectltest.NewScheduler()
	rec := newCallRecorder(s)
	cfg := &ratectl.DebounceConfig{Interval: config.TimeDuration(200 * time.Millisecond), Immediate: true}
	d := ratectl.NewDebouncerFromConfig(rec.fn, cfg, ratectl.CommonOpts{Scheduler: s})

	require.Equal(t, 10, d.Invoke(1))
	s.Advance(100 * time.Millisecond)
	require.Equal(t, 10, d.Invoke(2))
	s.Advance(200 * time.Millisecond)
	require.Equal(t, 30, d.Invoke(3))
}
