package app

import "runtime/debug"

// Build identity reported by /healthz and stamped into the PDF footer.
// CI overrides both via -ldflags; local builds fall back to whatever the
// Go module build info carries.
var (
	BuildVersion = "0.0.0-dev"
	BuildCommit  = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if BuildVersion == "0.0.0-dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		BuildVersion = info.Main.Version
	}
	if BuildCommit == "unknown" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				BuildCommit = s.Value
				break
			}
		}
	}
}
