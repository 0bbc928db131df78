package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/linuxmatters/jivecutting/internal/audio"
	"github.com/linuxmatters/jivecutting/internal/cli"
	"github.com/linuxmatters/jivecutting/internal/config"
	"github.com/linuxmatters/jivecutting/internal/logging"
	"github.com/linuxmatters/jivecutting/internal/processor"
	"github.com/linuxmatters/jivecutting/internal/ui"
	"github.com/linuxmatters/jivecutting/internal/walker"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface. Flags are pointers where the
// resolver must distinguish "not given" from a zero value, so a config
// file setting survives unless the flag is actually passed.
type CLI struct {
	Version bool   `short:"v" help:"Show version information"`
	Config  string `short:"c" type:"path" help:"Path to YAML config file (optional)"`
	Logs    bool   `help:"Save per-file trim reports"`

	DB          string `name:"db" help:"Silence floor in dB relative to full scale (default -60)"`
	Overwrite   *bool  `short:"o" help:"Write trimmed audio back to the input files"`
	DeleteEmpty *bool  `name:"rm" help:"Delete input files whose trimmed output would be empty"`

	Cut            *bool    `help:"Split files at interior silences"`
	MinSilence     *float64 `help:"Minimum silence length to cut at, in milliseconds"`
	MinSegment     *float64 `help:"Minimum segment length to keep, in milliseconds"`
	Postfix        *string  `help:"Segment file name postfix, before the sequence number"`
	Subdir         *bool    `help:"Write segments into a subdirectory named after the input file"`
	DeleteOriginal *bool    `help:"Delete the input file after its segments are written"`

	Paths []string `arg:"" name:"paths" help:"WAV files or directories to scan (default: current directory)" type:"path" optional:""`
}

func main() {
	cliArgs := &CLI{}
	kongCtx := kong.Parse(cliArgs,
		kong.Name("jivecutting"),
		kong.Description("WAV silence trimmer and splitter"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	// Resolve configuration: defaults, then the optional YAML file, then flags
	cfg, err := resolveConfig(cliArgs)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	// Expand paths into candidate WAV files
	files, err := walker.Collect(cliArgs.Paths)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	if len(files) == 0 {
		cli.PrintError("No WAV files found")
		kongCtx.PrintUsage(false)
		os.Exit(1)
	}

	// Open debug log file
	debugLog, _ := os.Create("jivecutting-debug.log")
	defer debugLog.Close()
	log := func(format string, args ...interface{}) {
		if debugLog != nil {
			fmt.Fprintf(debugLog, format+"\n", args...)
		}
	}

	// Create the Bubbletea UI model
	model := ui.NewModel(files, settingsSummary(cfg))

	// Start the TUI
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Start processing in background; files stay strictly sequential
	go func() {
		for i, inputPath := range files {
			fileStartTime := time.Now()

			log("[MAIN] Sending FileStartMsg for file %d: %s", i, inputPath)
			p.Send(ui.FileStartMsg{
				FileIndex: i,
				FileName:  inputPath,
			})

			progress := func(stage int, stageName string, fraction float64) {
				log("[MAIN] Sending ProgressMsg: Stage %d (%s), Progress %.1f%%", stage, stageName, fraction*100)
				p.Send(ui.ProgressMsg{
					Stage:     stage,
					StageName: stageName,
					Fraction:  fraction,
				})
			}

			log("[MAIN] Starting ProcessFile for %s", inputPath)
			result, err := processor.ProcessFile(inputPath, &cfg, progress)
			if err != nil {
				log("[MAIN] ProcessFile failed: %v", err)
				p.Send(ui.FileCompleteMsg{
					FileIndex: i,
					Skipped:   errors.Is(err, audio.ErrUnsupportedFormat),
					Err:       err,
				})
				continue
			}

			// Generate trim report if --logs flag is set
			if cliArgs.Logs {
				reportData := logging.ReportData{
					Version:   version,
					StartTime: fileStartTime,
					EndTime:   time.Now(),
					Config:    &cfg,
					Result:    result,
				}
				if err := logging.GenerateReport(reportData); err != nil {
					log("[MAIN] Failed to generate log file: %v", err)
				}
			}

			log("[MAIN] Sending FileCompleteMsg for file %d", i)
			p.Send(ui.FileCompleteMsg{
				FileIndex: i,
				Result:    result,
			})
		}

		log("[MAIN] Sending AllCompleteMsg")
		p.Send(ui.AllCompleteMsg{})
	}()

	// Run the program
	if _, err := p.Run(); err != nil {
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
		os.Exit(1)
	}
}

// resolveConfig layers the optional YAML file and the command-line flags
// over the built-in defaults. An unparsable --db value warns and keeps the
// default floor rather than aborting.
func resolveConfig(args *CLI) (config.Config, error) {
	cfg := config.Default()

	if args.Config != "" {
		file, err := config.LoadFile(args.Config)
		if err != nil {
			return cfg, err
		}
		file.Apply(&cfg)
	}

	if args.DB != "" {
		db, err := config.ParseDeviationDB(args.DB)
		if err != nil {
			cli.PrintWarning(err.Error())
		}
		cfg.DeviationDB = db
	}
	if args.Overwrite != nil {
		cfg.Overwrite = *args.Overwrite
	}
	if args.DeleteEmpty != nil {
		cfg.DeleteEmpty = *args.DeleteEmpty
	}

	// Any auto-cut flag enables segmentation, --cut=false disables it even
	// when the config file turned it on.
	if args.Cut != nil && !*args.Cut {
		cfg.AutoCut = nil
	} else if cfg.AutoCut == nil && anyAutoCutFlag(args) {
		ac := config.DefaultAutoCut()
		cfg.AutoCut = &ac
	}
	if cfg.AutoCut != nil {
		if args.MinSilence != nil {
			cfg.AutoCut.MinSilenceMs = *args.MinSilence
		}
		if args.MinSegment != nil {
			cfg.AutoCut.MinSegmentMs = *args.MinSegment
		}
		if args.Postfix != nil {
			cfg.AutoCut.Postfix = *args.Postfix
		}
		if args.Subdir != nil {
			cfg.AutoCut.Subdir = *args.Subdir
		}
		if args.DeleteOriginal != nil {
			cfg.AutoCut.DeleteOriginal = *args.DeleteOriginal
		}
	}

	return cfg, nil
}

// anyAutoCutFlag reports whether any segmentation flag was given.
func anyAutoCutFlag(args *CLI) bool {
	return (args.Cut != nil && *args.Cut) ||
		args.MinSilence != nil ||
		args.MinSegment != nil ||
		args.Postfix != nil ||
		args.Subdir != nil ||
		args.DeleteOriginal != nil
}

// settingsSummary builds the one-line settings banner the UI header shows.
func settingsSummary(cfg config.Config) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("floor %.1f dB", cfg.DeviationDB))
	if cfg.Overwrite {
		parts = append(parts, "overwrite")
	}
	if cfg.DeleteEmpty {
		parts = append(parts, "delete empty")
	}
	if cfg.AutoCut != nil {
		parts = append(parts, fmt.Sprintf("cut at %.0f ms silences", cfg.AutoCut.MinSilenceMs))
	}
	return strings.Join(parts, " | ")
}
