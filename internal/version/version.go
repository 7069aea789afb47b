package version

// Set at build time via -ldflags, e.g.
// go build -ldflags "-X shadebot/internal/version.Version=v1.2.0 -X shadebot/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	AppName   = "Shadebot"
	Version   = "dev"
	BuildDate = ""
)
