package domain

import "path/filepath"

// File and directory names for tasktrack.
const (
	AppDirName           = "tasktrack"       // Directory name under the config home
	ConfigFileName       = "config.toml"     // Global config file name
	LocalConfigFileName  = ".tasktrack.toml" // Config file name in the working directory
	DefaultStoreFileName = "tasks.json"      // Save file name
	LogFileName          = "tasktrack.log"   // Log file name
)

// GlobalAppDir returns the global tasktrack directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the config path in dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// ResolvePath joins a relative path onto dir. Absolute paths are returned unchanged.
func ResolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
