// Package paths resolves filesystem locations used by namecheck.
//
// Locations follow the XDG Base Directory specification via
// [github.com/adrg/xdg]:
//
//   - Linux: ~/.config/namecheck
//   - macOS: ~/Library/Application Support/namecheck
//   - Windows: %LOCALAPPDATA%\namecheck
package paths
