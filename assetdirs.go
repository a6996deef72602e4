package geodesy

import "os"

// localDataDir resolves the platform-specific local-data directory shared
// assets are rooted under, mirroring spec.md §6's "platform-specific
// local-data directory for shared [assets]; CWD for private". No example
// repo in the retrieval pack carries a dedicated app-directories library,
// so this one concern is built on the standard library's own
// os.UserConfigDir (recorded in DESIGN.md); it falls back to the working
// directory if the host has no resolvable config directory at all.
func localDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "."
	}
	return dir + string(os.PathSeparator) + "geodesy"
}
