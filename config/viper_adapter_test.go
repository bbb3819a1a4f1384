/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestViperAdapter_GetStringFromSet(t *testing.T) {
	va := NewViperAdapter()
	va.Set("policy", "Throttle")

	got, err := va.GetStringFromSet("policy", []string{"debounce", "throttle"}, true)
	require.NoError(t, err)
	require.Equal(t, "Throttle", got)

	_, err = va.GetStringFromSet("policy", []string{"debounce", "throttle"}, false)
	require.EqualError(t, err, `policy: unknown value "Throttle", should be one of [debounce throttle]`)
}

func TestViperAdapter_GetDuration(t *testing.T) {
	va := NewViperAdapter()

	got, err := va.GetDuration("missing")
	require.NoError(t, err)
	require.Zero(t, got)

	va.Set("wait", "1m30s")
	got, err = va.GetDuration("wait")
	require.NoError(t, err)
	require.Equal(t, 90*time.Second, got)

	va.Set("wait", "forever")
	_, err = va.GetDuration("wait")
	require.ErrorContains(t, err, "wait: ")
}

func TestViperAdapter_UnmarshalKey(t *testing.T) {
	type widget struct {
		Name  string       `mapstructure:"name"`
		Delay TimeDuration `mapstructure:"delay"`
	}

	va := NewViperAdapter()
	require.NoError(t, va.SetFromReader(bytes.NewBufferString(
		"widgets:\n  - name: search\n    delay: 300ms\n  - name: resize\n    delay: 1s\n"), DataTypeYAML))

	var widgets []widget
	require.NoError(t, va.UnmarshalKey("widgets", &widgets, WithTextUnmarshalHook()))
	require.Equal(t, []widget{
		{Name: "search", Delay: TimeDuration(300 * time.Millisecond)},
		{Name: "resize", Delay: TimeDuration(time.Second)},
	}, widgets)
}

func TestKeyPrefixedDataProvider(t *testing.T) {
	va := NewViperAdapter()
	kp := NewKeyPrefixedDataProvider(va, "throttle")
	kp.SetDefault("leading", true)
	kp.Set("interval", "1s")

	require.True(t, va.IsSet("throttle.leading"))
	require.Equal(t, "1s", va.Get("throttle.interval"))

	leading, err := kp.GetBool("leading")
	require.NoError(t, err)
	require.True(t, leading)

	require.EqualError(t, kp.WrapKeyErr("interval", errTest), "throttle.interval: test error")
}
