// Package config manages user-level settings stored at ~/.skaf/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// default_layout, the layout file applied when no --layout flag is given.
// Every key can also be set through the environment (SKAF_DEFAULT_LAYOUT etc).
package config
