// Package config resolves the target site and credentials for a run.
//
// Three sources are checked in order, first complete one wins: the three
// positional command-line arguments, the WORDPRESS_* environment variables,
// and an optional YAML file:
//
//	site_url: https://example.com
//	username: admin
//	password: "xxxx xxxx xxxx xxxx"
//
// The file may also spell the password as app_password, matching the
// WordPress application-password terminology.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Credentials identifies the target WordPress site and the application
// password used for HTTP Basic authentication.
type Credentials struct {
	SiteURL  string `yaml:"site_url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// AppPassword is an alias for Password; when both are set Password wins.
	AppPassword string `yaml:"app_password"`
}

// ErrNoCredentials is returned by Resolve when no source yields a target.
var ErrNoCredentials = errors.New("no credentials provided")

// Resolve picks credentials from the positional arguments (exactly three),
// then the environment, then the optional YAML file at configPath. An empty
// configPath skips the file source. Username and password may resolve empty
// from the environment; the remote API rejects them, not this package.
func Resolve(args []string, configPath string) (Credentials, error) {
	if len(args) == 3 {
		return Credentials{SiteURL: args[0], Username: args[1], Password: args[2]}, nil
	}

	if siteURL := os.Getenv("WORDPRESS_API_URL"); siteURL != "" {
		password := os.Getenv("WORDPRESS_PASSWORD")
		if password == "" {
			password = os.Getenv("WORDPRESS_APP_PASSWORD")
		}
		return Credentials{
			SiteURL:  siteURL,
			Username: os.Getenv("WORDPRESS_USERNAME"),
			Password: password,
		}, nil
	}

	if configPath != "" {
		return Load(configPath)
	}

	return Credentials{}, ErrNoCredentials
}

// Load reads and parses a YAML credentials file.
func Load(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("read config: %w", err)
	}
	creds, err := Parse(data)
	if err != nil {
		return Credentials{}, fmt.Errorf("%s: %w", path, err)
	}
	return creds, nil
}

// Parse decodes YAML credentials and applies the app_password alias.
func Parse(data []byte) (Credentials, error) {
	var creds Credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parse config: %w", err)
	}
	if creds.Password == "" {
		creds.Password = creds.AppPassword
	}
	if creds.SiteURL == "" {
		return Credentials{}, errors.New("config: site_url is required")
	}
	return creds, nil
}
