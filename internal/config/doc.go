// Package config manages user-level settings stored at ~/.xcsync/config.yaml.
// Settings cover defaults the sync manifest does not pin down per project:
// the build destination fallback, an override for the DerivedData root, and
// how many trailing build log lines to print.
package config
