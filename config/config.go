/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package config loads configuration objects from files, readers and environment variables.
// Every object implements Config and reads its own keys from a DataProvider.
package config

// Config is implemented by configuration objects that may be filled by Loader.
type Config interface {
	SetProviderDefaults(dp DataProvider)
	Set(dp DataProvider) error
}

// KeyPrefixProvider is implemented by configuration objects which keys live under a common prefix.
type KeyPrefixProvider interface {
	KeyPrefix() string
}

func providerForConfig(dp DataProvider, cfg Config) DataProvider {
	if kp, ok := cfg.(KeyPrefixProvider); ok && kp.KeyPrefix() != "" {
		return NewKeyPrefixedDataProvider(dp, kp.KeyPrefix())
	}
	return dp
}
