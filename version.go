package gridpath

// Version is the release of the module, overridden at link time with
// -ldflags "-X github.com/katalvlaran/gridpath.Version=...".
var Version = "0.1.0-dev"
