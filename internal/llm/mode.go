package llm

// Mode selects whether the assistant calls the live completion API or returns
// deterministic fixtures. It is decided once at startup and threaded into every
// component — no package reads the environment on its own.
type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"
)

// ModeFor derives the operating mode from credential presence. An absent key is
// not an error; it simply means the service runs on fixture output.
func ModeFor(apiKey string) Mode {
	if apiKey != "" {
		return ModeLive
	}
	return ModeMock
}
