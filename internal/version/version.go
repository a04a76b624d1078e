package version

// Set with -ldflags "-X clima-bot/internal/version.BuildDate=..." at build time.
var (
	BuildDate = ""
	GoVersion = ""
	Commit    = ""
)

const (
	AppName        = "clima-bot"
	AppDescription = "Discord bot with text commands and OpenWeatherMap forecasts"
)

// String is the one-line build summary printed at startup and by the CLI.
func String() string {
	s := AppName
	if Commit != "" {
		s += " " + Commit
	}
	if BuildDate != "" {
		s += " (" + BuildDate + ")"
	}
	if GoVersion != "" {
		s += " " + GoVersion
	}
	return s
}
