package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "dockit"
	configName   = "config.toml"
	databaseName = "dockit.sqlite"
	settingsName = "perspectives.toml"
)

// XDGDirs are the per-application base directories.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs resolves $XDG_{CONFIG,DATA,STATE}_HOME/dockit, falling back to
// the usual dot directories under $HOME. With ENV=dev everything lives in
// ./.dev/dockit so development runs never touch the real layout store.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: dev, DataHome: dev, StateHome: dev}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	base := func(env string, fallback ...string) string {
		if dir := os.Getenv(env); dir != "" {
			return filepath.Join(dir, appName)
		}
		return filepath.Join(append(append([]string{home}, fallback...), appName)...)
	}
	return &XDGDirs{
		ConfigHome: base("XDG_CONFIG_HOME", ".config"),
		DataHome:   base("XDG_DATA_HOME", ".local", "share"),
		StateHome:  base("XDG_STATE_HOME", ".local", "state"),
	}, nil
}

func xdgPath(pick func(*XDGDirs) string, elem ...string) (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{pick(dirs)}, elem...)...), nil
}

func configHome(d *XDGDirs) string { return d.ConfigHome }
func dataHome(d *XDGDirs) string   { return d.DataHome }
func stateHome(d *XDGDirs) string  { return d.StateHome }

// GetConfigDir returns the directory holding config.toml.
func GetConfigDir() (string, error) { return xdgPath(configHome) }

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) { return xdgPath(configHome, configName) }

// GetSettingsFile returns the default perspectives settings file.
func GetSettingsFile() (string, error) { return xdgPath(configHome, settingsName) }

// GetDatabaseFile returns the path of the perspective database.
func GetDatabaseFile() (string, error) { return xdgPath(dataHome, databaseName) }

// GetLogDir returns the log directory under XDG_STATE_HOME.
func GetLogDir() (string, error) { return xdgPath(stateHome, "logs") }

// EnsureDirectories creates the config, data and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
