package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version information - can be overridden at build time via ldflags:
// go build -ldflags "-X github.com/fback/fback/pkg/ui.Version=1.0.0"
var (
	Version = "0.2.0"
	Commit  = "dev"
)

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses banner and
// informational stderr output).
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled.
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output.
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled.
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

const bannerArt = `
      __ _                _
     / _| |__   __ _  ___| | __
    | |_| '_ \ / _` + "`" + ` |/ __| |/ /
    |  _| |_) | (_| | (__|   <
    |_| |_.__/ \__,_|\___|_|\_\
`

// PrintBanner prints the application banner to stderr. Results go to
// stdout, so the banner never pollutes piped output.
func PrintBanner() {
	if IsSilent() {
		return
	}
	for _, line := range strings.Split(bannerArt, "\n") {
		if line != "" {
			fmt.Fprintln(os.Stderr, BannerStyle.Render(line))
		}
	}
	fmt.Fprintf(os.Stderr, "                          v%s\n\n", VersionStyle.Render(Version))
}

// PrintError prints an error message to stderr.
func PrintError(message string) {
	fmt.Fprintln(os.Stderr, FailStyle.Render("[X] "+message))
}

// PrintWarning prints a warning message to stderr.
func PrintWarning(message string) {
	fmt.Fprintln(os.Stderr, WarnStyle.Render("[!] "+message))
}

// PrintInfo prints an info message to stderr unless silent.
func PrintInfo(message string) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, InfoStyle.Render("[*] ")+message)
}

// PrintConfigLine prints a single "key : value" config line to stderr
// unless silent.
func PrintConfigLine(key, value string) {
	if IsSilent() || value == "" {
		return
	}
	fmt.Fprintf(os.Stderr, " :: %s : %s\n",
		ConfigLabelStyle.Render(key),
		ConfigValueStyle.Render(value))
}
