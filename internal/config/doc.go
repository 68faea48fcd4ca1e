// Package config manages user-level settings stored at ~/.nktool/config.yaml.
// Values can be overridden with NKTOOL_* environment variables. It covers the
// catalog URL and cache path, the fetch timeout, the package manager used for
// installs, and an optional version constraint for the NeoKit core package.
package config
