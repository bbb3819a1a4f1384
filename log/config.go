/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package log

import (
	"fmt"
	"strings"

	"github.com/acronis/go-callkit/config"
)

const cfgDefaultKeyPrefix = "log"

const (
	cfgKeyLevel                  = "level"
	cfgKeyFormat                 = "format"
	cfgKeyOutput                 = "output"
	cfgKeyNoColor                = "nocolor"
	cfgKeyAddCaller              = "addCaller"
	cfgKeyFilePath               = "file.path"
	cfgKeyFileRotationCompress   = "file.rotation.compress"
	cfgKeyFileRotationMaxSizeMB  = "file.rotation.maxSizeMB"
	cfgKeyFileRotationMaxBackups = "file.rotation.maxBackups"
)

// Default values.
const (
	DefaultFileRotationMaxSizeMB  = 250
	DefaultFileRotationMaxBackups = 10
)

// Level is a logging level.
type Level string

// Logging levels.
const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format is a logging format.
type Format string

// Logging formats.
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Output is a logging output.
type Output string

// Logging outputs.
const (
	OutputStdout Output = "stdout"
	OutputStderr Output = "stderr"
	OutputFile   Output = "file"
)

// Config is a logging configuration.
type Config struct {
	Level     Level            `mapstructure:"level" yaml:"level" json:"level"`
	Format    Format           `mapstructure:"format" yaml:"format" json:"format"`
	Output    Output           `mapstructure:"output" yaml:"output" json:"output"`
	NoColor   bool             `mapstructure:"nocolor" yaml:"nocolor" json:"nocolor"`
	AddCaller bool             `mapstructure:"addCaller" yaml:"addCaller" json:"addCaller"`
	File      FileOutputConfig `mapstructure:"file" yaml:"file" json:"file"`

	keyPrefix string
}

// FileOutputConfig configures the "file" output.
type FileOutputConfig struct {
	Path     string             `mapstructure:"path" yaml:"path" json:"path"`
	Rotation FileRotationConfig `mapstructure:"rotation" yaml:"rotation" json:"rotation"`
}

// FileRotationConfig configures rotation of the log file.
type FileRotationConfig struct {
	Compress   bool `mapstructure:"compress" yaml:"compress" json:"compress"`
	MaxSizeMB  int  `mapstructure:"maxSizeMB" yaml:"maxSizeMB" json:"maxSizeMB"`
	MaxBackups int  `mapstructure:"maxBackups" yaml:"maxBackups" json:"maxBackups"`
}

var _ config.Config = (*Config)(nil)
var _ config.KeyPrefixProvider = (*Config)(nil)

// NewConfig creates an empty Config that reads its keys under the "log" prefix (or keyPrefix if given).
func NewConfig(keyPrefix ...string) *Config {
	c := &Config{keyPrefix: cfgDefaultKeyPrefix}
	if len(keyPrefix) > 0 {
		c.keyPrefix = keyPrefix[0]
	}
	return c
}

// NewDefaultConfig creates a Config with default values: info level, json format, stdout.
func NewDefaultConfig() *Config {
	c := NewConfig()
	c.Level = LevelInfo
	c.Format = FormatJSON
	c.Output = OutputStdout
	c.File.Rotation = FileRotationConfig{
		MaxSizeMB:  DefaultFileRotationMaxSizeMB,
		MaxBackups: DefaultFileRotationMaxBackups,
	}
	return c
}

// KeyPrefix implements config.KeyPrefixProvider.
func (c *Config) KeyPrefix() string {
	return c.keyPrefix
}

// SetProviderDefaults implements config.Config.
func (c *Config) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyLevel, string(LevelInfo))
	dp.SetDefault(cfgKeyFormat, string(FormatJSON))
	dp.SetDefault(cfgKeyOutput, string(OutputStdout))
	dp.SetDefault(cfgKeyFileRotationMaxSizeMB, DefaultFileRotationMaxSizeMB)
	dp.SetDefault(cfgKeyFileRotationMaxBackups, DefaultFileRotationMaxBackups)
}

// Set implements config.Config.
func (c *Config) Set(dp config.DataProvider) error {
	level, err := dp.GetStringFromSet(cfgKeyLevel,
		[]string{string(LevelError), string(LevelWarn), string(LevelInfo), string(LevelDebug)}, true)
	if err != nil {
		return err
	}
	c.Level = Level(strings.ToLower(level))

	format, err := dp.GetStringFromSet(cfgKeyFormat, []string{string(FormatJSON), string(FormatText)}, true)
	if err != nil {
		return err
	}
	c.Format = Format(strings.ToLower(format))

	output, err := dp.GetStringFromSet(cfgKeyOutput,
		[]string{string(OutputStdout), string(OutputStderr), string(OutputFile)}, true)
	if err != nil {
		return err
	}
	c.Output = Output(strings.ToLower(output))

	if c.NoColor, err = dp.GetBool(cfgKeyNoColor); err != nil {
		return err
	}
	if c.AddCaller, err = dp.GetBool(cfgKeyAddCaller); err != nil {
		return err
	}
	return c.setFileOutput(dp)
}

func (c *Config) setFileOutput(dp config.DataProvider) error {
	var err error
	if c.File.Path, err = dp.GetString(cfgKeyFilePath); err != nil {
		return err
	}
	if c.File.Path == "" && c.Output == OutputFile {
		return dp.WrapKeyErr(cfgKeyFilePath, fmt.Errorf("cannot be empty when %q output is used", OutputFile))
	}
	if c.File.Rotation.Compress, err = dp.GetBool(cfgKeyFileRotationCompress); err != nil {
		return err
	}
	if c.File.Rotation.MaxSizeMB, err = dp.GetInt(cfgKeyFileRotationMaxSizeMB); err != nil {
		return err
	}
	if c.File.Rotation.MaxSizeMB < 1 {
		return dp.WrapKeyErr(cfgKeyFileRotationMaxSizeMB, fmt.Errorf("should be >= 1"))
	}
	if c.File.Rotation.MaxBackups, err = dp.GetInt(cfgKeyFileRotationMaxBackups); err != nil {
		return err
	}
	if c.File.Rotation.MaxBackups < 0 {
		return dp.WrapKeyErr(cfgKeyFileRotationMaxBackups, fmt.Errorf("should be >= 0"))
	}
	return nil
}
