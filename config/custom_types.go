/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TimeDuration is a time.Duration that can be decoded from both human-readable strings ("300ms")
// and integers (nanoseconds) in JSON, YAML and text forms.
type TimeDuration time.Duration

func parseTimeDuration(s string) (TimeDuration, error) {
	s = strings.TrimSpace(s)
	if num, err := strconv.ParseInt(s, 10, 64); err == nil {
		if num < 0 {
			return 0, fmt.Errorf("negative value is not allowed: %d", num)
		}
		return TimeDuration(num), nil
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time duration format (%s): %w", s, err)
	}
	if dur < 0 {
		return 0, fmt.Errorf("negative value is not allowed: %s", s)
	}
	return TimeDuration(dur), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *TimeDuration) UnmarshalJSON(data []byte) error {
	parsed, err := parseTimeDuration(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *TimeDuration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("invalid time duration format: %w", err)
	}
	parsed, err := parseTimeDuration(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler (used by mapstructure.TextUnmarshallerHookFunc).
func (d *TimeDuration) UnmarshalText(text []byte) error {
	parsed, err := parseTimeDuration(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Duration returns the value as time.Duration.
func (d TimeDuration) Duration() time.Duration {
	return time.Duration(d)
}

func (d TimeDuration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON implements json.Marshaler.
func (d TimeDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// MarshalYAML implements yaml.Marshaler.
func (d TimeDuration) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (d TimeDuration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
