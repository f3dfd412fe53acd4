package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// DefaultSecretsFile is the credential file read when no override is given.
const DefaultSecretsFile = "secrets.json"

// ErrNotFound indicates the secrets file does not exist.
var ErrNotFound = errors.New("secrets file not found")

// Credentials holds the Last.fm API credentials and the target user
type Credentials struct {
	// Last.fm API key ("key" field)
	APIKey string

	// Last.fm API secret ("secret" field)
	APISecret string

	// Last.fm username whose statistics are reported ("user" field)
	Username string
}

// Load reads credentials from the given secrets file.
//
// The file is JSON with three fields: "key", "secret", and "user".
// A missing file returns an error wrapping ErrNotFound. Field contents are
// not validated here; empty credentials are rejected downstream when the
// API client is constructed.
func Load(path string) (*Credentials, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		// viper reports a missing file differently depending on whether
		// it searched config paths or was given an explicit file.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read secrets file: %w", err)
	}

	return &Credentials{
		APIKey:    v.GetString("key"),
		APISecret: v.GetString("secret"),
		Username:  v.GetString("user"),
	}, nil
}
