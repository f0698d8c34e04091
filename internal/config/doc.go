// Package config manages persistent user settings stored at
// ~/.labforge/config.yaml: the default base path for new projects and the
// color toggle for styled output.
package config
