package config

// Version is the registrod binary version.
// Set at build time via: -ldflags "-X github.com/registrohq/registro/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
