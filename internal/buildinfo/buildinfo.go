package buildinfo

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for titles and logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Line returns the one-line banner logged at startup.
func Line() string {
	s := "evil-android " + Short()
	if Date != "" && Date != "unknown" {
		s += " (" + Date + ")"
	}
	return s
}
