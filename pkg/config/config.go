// Package config holds the CLI configuration surface.
package config

import (
	"flag"
	"fmt"

	"github.com/fback/fback/pkg/defaults"
	"github.com/fback/fback/pkg/input"
)

// Config holds all CLI options.
type Config struct {
	// Input
	Targets        input.StringSliceFlag // -u
	ListFile       string                // -list
	PatternFile    string                // -p, JSON or YAML template set
	ExtensionsFile string                // -e, JSON or YAML extension levels
	WordlistFile   string                // -w

	// Levels
	Levels         string // -l, both groups
	BackupLevels   string // -bl, backup group only
	CompressLevels string // -cl, compress group only

	// Date method
	DateMode    bool   // -dm
	DateCustom  string // -dc, comma-separated custom formats
	DateDefault bool   // -dd, use the template set's date-formats
	YearRange   string // -yr
	MonthRange  string // -mr
	DayRange    string // -dr

	// Other
	NumberRange string // -nr

	// Output
	OutputFile   string // -o
	WordlistOnly bool   // -wo
	JSONOutput   bool   // -jo
	Silent       bool   // -s
	NoColor      bool   // -nc
}

// ParseFlags parses command line arguments and returns the Config.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// === INPUT ===
	flag.Var(&cfg.Targets, "u", "Target URL(s) - comma-separated or repeated")
	flag.Var(&cfg.Targets, "target", "Target URL(s)")
	flag.StringVar(&cfg.ListFile, "list", "", "File containing target URLs (URLs on stdin also work)")
	flag.StringVar(&cfg.PatternFile, "p", "", "Pattern file (JSON or YAML, keys: patterns, date-formats)")
	flag.StringVar(&cfg.PatternFile, "pattern", "", "Pattern file (alias)")
	flag.StringVar(&cfg.ExtensionsFile, "e", "", "Extensions file with levels (JSON or YAML)")
	flag.StringVar(&cfg.ExtensionsFile, "extensions", "", "Extensions file (alias)")
	flag.StringVar(&cfg.WordlistFile, "w", "", "Wordlist file for the $word variable")
	flag.StringVar(&cfg.WordlistFile, "wordlist", "", "Wordlist file (alias)")

	// === LEVELS ===
	flag.StringVar(&cfg.Levels, "l", defaults.Levels, "Backup & compress extension level(s) [min:1 max:10]")
	flag.StringVar(&cfg.Levels, "levels", defaults.Levels, "Extension levels (alias)")
	flag.StringVar(&cfg.BackupLevels, "bl", "", "Backup extension level(s) only [min:1 max:10]")
	flag.StringVar(&cfg.BackupLevels, "backup-levels", "", "Backup levels (alias)")
	flag.StringVar(&cfg.CompressLevels, "cl", "", "Compress extension level(s) only [min:1 max:10]")
	flag.StringVar(&cfg.CompressLevels, "compress-levels", "", "Compress levels (alias)")

	// === DATE METHOD ===
	flag.BoolVar(&cfg.DateMode, "dm", false, "Enable date method")
	flag.BoolVar(&cfg.DateMode, "date-method", false, "Enable date method (alias)")
	flag.StringVar(&cfg.DateCustom, "dc", "", "Custom date format(s), e.g. '$full_domain.%y-%m-%d.$ext' [comma-separated]")
	flag.StringVar(&cfg.DateCustom, "date-custom", "", "Custom date formats (alias)")
	flag.BoolVar(&cfg.DateDefault, "dd", false, "Use the pattern file's default date-formats")
	flag.BoolVar(&cfg.DateDefault, "date-default", false, "Default date formats (alias)")
	flag.StringVar(&cfg.YearRange, "yr", defaults.YearRange, "Range of years, e.g. '2019-2022' or '2020,2022'")
	flag.StringVar(&cfg.YearRange, "year-range", defaults.YearRange, "Year range (alias)")
	flag.StringVar(&cfg.MonthRange, "mr", defaults.MonthRange, "Range of months [min:1 max:12]")
	flag.StringVar(&cfg.MonthRange, "month-range", defaults.MonthRange, "Month range (alias)")
	flag.StringVar(&cfg.DayRange, "dr", defaults.DayRange, "Range of days [min:1 max:31]")
	flag.StringVar(&cfg.DayRange, "day-range", defaults.DayRange, "Day range (alias)")

	// === OTHER ===
	flag.StringVar(&cfg.NumberRange, "nr", defaults.NumberRange, "Range of the $num variable")
	flag.StringVar(&cfg.NumberRange, "number-range", defaults.NumberRange, "Number range (alias)")

	// === OUTPUT ===
	flag.StringVar(&cfg.OutputFile, "o", "", "Output file (default: stdout)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output file (alias)")
	flag.BoolVar(&cfg.WordlistOnly, "wo", false, "Emit bare relative paths instead of full URLs")
	flag.BoolVar(&cfg.WordlistOnly, "wordlist-only", false, "Wordlist only (alias)")
	flag.BoolVar(&cfg.JSONOutput, "jo", false, "Emit raw per-category lists as JSON")
	flag.BoolVar(&cfg.JSONOutput, "json-output", false, "JSON output (alias)")
	flag.BoolVar(&cfg.Silent, "s", false, "Silent mode - no banner")
	flag.BoolVar(&cfg.Silent, "silent", false, "Silent mode (alias)")
	flag.BoolVar(&cfg.NoColor, "nc", false, "Disable colored output")
	flag.BoolVar(&cfg.NoColor, "no-color", false, "No color (alias)")

	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option combinations that cannot work together.
func (c *Config) Validate() error {
	if c.WordlistOnly && c.JSONOutput {
		return fmt.Errorf("%w: -wo and -jo are mutually exclusive", ErrInvalidConfig)
	}
	if !c.DateMode && (c.DateCustom != "" || c.DateDefault) {
		return fmt.Errorf("%w: -dc/-dd require -dm", ErrInvalidConfig)
	}
	if c.DateCustom != "" && c.DateDefault {
		return fmt.Errorf("%w: -dc and -dd are mutually exclusive", ErrInvalidConfig)
	}
	return nil
}
