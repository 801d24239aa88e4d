// Package config reads and writes user settings stored at
// ~/.relink/config.yaml, with RELINK_* environment variables layered on
// top. Settings only provide defaults for flags; an absent config file
// leaves the tool's fixed conventions in effect.
package config
