package paillier

// Version is populated at build time via
// -ldflags "-X github.com/leafn/paillier/pkg/paillier.Version=...".
var Version = "v0.0.0-in-progress"

// ModuleVersion returns the semantic version populated at build time. In
// development it defaults to v0.0.0-in-progress.
func ModuleVersion() string {
	return Version
}
