// Package installer defines the installer manifest of the WinGet schema:
// per-installer fields such as architecture, installer type, switches,
// return codes, and markets, plus the root manifest with its Optimize
// pass that lifts values shared by every installer.
package installer
