/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package config

import "io"

// Loader fills configuration objects from a DataProvider.
// Defaults of all objects are registered before any value is read.
type Loader struct {
	DataProvider DataProvider
}

// NewDefaultLoader creates a Loader backed by viper that also looks up environment variables with the given prefix.
func NewDefaultLoader(envVarsPrefix string) *Loader {
	va := NewViperAdapter()
	va.UseEnvVars(envVarsPrefix)
	return NewLoader(va)
}

// NewLoader creates a new Loader.
func NewLoader(dp DataProvider) *Loader {
	return &Loader{DataProvider: dp}
}

// LoadFromFile reads the file and fills passed configuration objects.
func (l *Loader) LoadFromFile(path string, dataType DataType, cfg Config, cfgs ...Config) error {
	if err := l.DataProvider.SetFromFile(path, dataType); err != nil {
		return err
	}
	return l.Load(cfg, cfgs...)
}

// LoadFromReader reads data from reader and fills passed configuration objects.
func (l *Loader) LoadFromReader(reader io.Reader, dataType DataType, cfg Config, cfgs ...Config) error {
	if err := l.DataProvider.SetFromReader(reader, dataType); err != nil {
		return err
	}
	return l.Load(cfg, cfgs...)
}

// Load fills configuration objects from values that are already present in the data provider.
func (l *Loader) Load(cfg Config, cfgs ...Config) error {
	all := append([]Config{cfg}, cfgs...)
	for _, c := range all {
		c.SetProviderDefaults(providerForConfig(l.DataProvider, c))
	}
	for _, c := range all {
		if err := c.Set(providerForConfig(l.DataProvider, c)); err != nil {
			return err
		}
	}
	return nil
}
