// Command fback generates wordlists of candidate backup-file names and
// paths from target URLs, for probing accidentally exposed backups.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fback/fback/pkg/assemble"
	"github.com/fback/fback/pkg/config"
	"github.com/fback/fback/pkg/defaults"
	"github.com/fback/fback/pkg/extensions"
	"github.com/fback/fback/pkg/input"
	"github.com/fback/fback/pkg/ranges"
	"github.com/fback/fback/pkg/runner"
	"github.com/fback/fback/pkg/templates"
	"github.com/fback/fback/pkg/ui"
	"github.com/fback/fback/pkg/wordlist"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(defaults.ExitUserError)
	}

	ui.SetSilent(cfg.Silent)
	ui.SetNoColor(cfg.NoColor)

	if cfg.OutputFile == "" && ui.StderrIsTerminal() {
		ui.PrintBanner()
	}

	if err := run(cfg); err != nil {
		ui.PrintError(err.Error())
		if errors.Is(err, errInternal) {
			os.Exit(defaults.ExitInternalError)
		}
		os.Exit(defaults.ExitUserError)
	}
}

// errInternal marks failures that are not caused by user input.
var errInternal = errors.New("internal error")

func run(cfg *config.Config) error {
	source := &input.TargetSource{
		URLs:     cfg.Targets,
		ListFile: cfg.ListFile,
		Stdin:    true,
	}
	targets, err := source.Targets()
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return config.ErrNoTargets
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	ui.PrintConfigLine("Targets", fmt.Sprintf("%d", len(targets)))
	ui.PrintConfigLine("Patterns", fmt.Sprintf("%d", len(opts.Patterns)))
	ui.PrintConfigLine("Words", fmt.Sprintf("%d", len(opts.Words)))
	ui.PrintConfigLine("Extensions", fmt.Sprintf("%d", len(opts.Extensions)))

	res := runner.Run(targets, opts)

	var out []byte
	if cfg.JSONOutput {
		out, err = assemble.JSON(res, cfg.DateMode)
		if err != nil {
			return fmt.Errorf("%w: encoding output: %v", errInternal, err)
		}
	} else {
		out = []byte(assemble.Text(res, targets, cfg.WordlistOnly))
	}

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, out, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", cfg.OutputFile, err)
		}
		ui.PrintInfo(fmt.Sprintf("wrote %s", cfg.OutputFile))
		return nil
	}

	fmt.Println(string(out))
	return nil
}

// buildOptions resolves files, levels, and ranges into the runner's
// input lists.
func buildOptions(cfg *config.Config) (runner.Options, error) {
	var opts runner.Options

	tmplSet := templates.Default()
	if cfg.PatternFile != "" {
		var err error
		if tmplSet, err = templates.Load(cfg.PatternFile); err != nil {
			return opts, err
		}
	}
	opts.Patterns = tmplSet.Patterns

	extSet := extensions.Default()
	if cfg.ExtensionsFile != "" {
		var err error
		if extSet, err = extensions.Load(cfg.ExtensionsFile); err != nil {
			return opts, err
		}
	}
	exts, err := selectExtensions(cfg, extSet)
	if err != nil {
		return opts, err
	}
	opts.Extensions = exts

	if cfg.WordlistFile != "" {
		words, err := wordlist.Load(cfg.WordlistFile)
		if err != nil {
			return opts, err
		}
		opts.Words = words
	} else {
		opts.Words = wordlist.Builtin()
	}

	nums, err := ranges.Numbers(cfg.NumberRange)
	if err != nil {
		return opts, err
	}
	opts.Numbers = nums

	if cfg.DateMode {
		opts.DateMode = true
		if opts.Years, err = ranges.Years(cfg.YearRange); err != nil {
			return opts, err
		}
		if opts.Months, err = ranges.Months(cfg.MonthRange); err != nil {
			return opts, err
		}
		if opts.Days, err = ranges.Days(cfg.DayRange); err != nil {
			return opts, err
		}
		switch {
		case cfg.DateDefault:
			opts.DateTemplates = tmplSet.DateFormats
		case cfg.DateCustom != "":
			opts.DateTemplates = splitCustomFormats(cfg.DateCustom)
		}
	}

	return opts, nil
}

// selectExtensions applies the level precedence: -bl wins, then -cl,
// then -l over both groups.
func selectExtensions(cfg *config.Config, set extensions.Set) ([]string, error) {
	switch {
	case cfg.BackupLevels != "":
		levels, err := extensions.ParseLevels(cfg.BackupLevels)
		if err != nil {
			return nil, err
		}
		return set.Select(levels, true, false), nil
	case cfg.CompressLevels != "":
		levels, err := extensions.ParseLevels(cfg.CompressLevels)
		if err != nil {
			return nil, err
		}
		return set.Select(levels, false, true), nil
	default:
		levels, err := extensions.ParseLevels(cfg.Levels)
		if err != nil {
			return nil, err
		}
		return set.Select(levels, true, true), nil
	}
}

func splitCustomFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
