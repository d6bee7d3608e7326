// Package config provides filesystem paths and editor settings.
package config

import "time"

// TabWidth is the number of terminal cells a tab stop occupies.
const TabWidth = 4

// CursorBlinkInterval controls how often the editor cursor toggles visibility.
const CursorBlinkInterval = 500 * time.Millisecond

// RecentFilesLimit caps how many entries the start screen picker shows.
const RecentFilesLimit = 20
