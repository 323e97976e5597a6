package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vk/isebuild/internal/app"
	"github.com/vk/isebuild/internal/ctxlog"
	"github.com/vk/isebuild/internal/hcl"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	var exit *ExitError
	if errors.As(err, &exit) {
		return err
	}
	return &ExitError{Code: 2, Message: err.Error()}
}

var heading = color.RGB(50, 108, 229).SprintFunc()

// globals are the persistent flags shared by every subcommand.
type globals struct {
	logLevel  string
	logFormat string
	intstyle  string
	process   string
	output    string
	prefs     []string
	overrides []string
	maxDepth  int
	jobs      int

	outW io.Writer
	errW io.Writer
}

// newApp builds the application from the flags. Logs go to the error
// stream so that outW carries only command output.
func (g *globals) newApp(ctx context.Context) (*app.App, context.Context, error) {
	cfg, err := app.NewConfig(app.Config{
		LogFormat: g.logFormat,
		LogLevel:  g.logLevel,
		PrefPaths: g.prefs,
		Overrides: g.overrides,
		Process:   g.process,
		Intstyle:  g.intstyle,
		MaxDepth:  g.maxDepth,
		Jobs:      g.jobs,
	})
	if err != nil {
		return nil, nil, usageError(err)
	}
	a, err := app.NewApp(g.errW, cfg, hcl.NewLoader())
	if err != nil {
		return nil, nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return a, ctxlog.WithLogger(ctx, a.Logger()), nil
}

// NewRootCommand builds the command tree writing results to outW and logs
// and diagnostics to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	g := &globals{outW: outW, errW: errW}

	cmd := &cobra.Command{
		Use:   "isebuild",
		Short: "Plan ISE implementation runs from project descriptors",
		Long: heading("Usage: isebuild [global options] <subcommand> [args]") + "\n\n" +
			"isebuild reads ISE project descriptors and tool preferences and produces\n" +
			"the XST script, source list and command line of every implementation\n" +
			"stage, from synthesis to bitstream generation. It never runs the tools.\n",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch g.output {
			case "text", "json", "yaml":
				return nil
			}
			return &ExitError{Code: 2, Message: fmt.Sprintf("invalid output format %q: must be one of text, json, yaml", g.output)}
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	f := cmd.PersistentFlags()
	f.StringVar(&g.logLevel, "log-level", "warn", "Logging level. One of: (debug | info | warn | error)")
	f.StringVar(&g.logFormat, "log-format", "text", "Log output format. One of: (text | json)")
	f.StringVar(&g.intstyle, "intstyle", "", "Message style passed to every tool. One of: (ise | xflow | silent)")
	f.StringArrayVar(&g.prefs, "prefs", nil, "Preference file or directory of .hcl files, repeatable; later ones win")
	f.StringArrayVar(&g.overrides, "set", nil, `Preference override "[process:]Option Name=value", repeatable`)
	f.StringVar(&g.process, "process", "", "Process of --set overrides without a prefix, by name or tool")
	f.StringVarP(&g.output, "output", "o", "text", "Output format. One of: (text | json | yaml)")
	f.IntVar(&g.maxDepth, "max-depth", 0, "Deepest sub-project nesting accepted; 0 uses the default")
	f.IntVarP(&g.jobs, "jobs", "j", 0, "Projects planned at once; 0 means one per CPU")

	cmd.AddCommand(
		newFilesCommand(g),
		newOptionsCommand(g),
		newScriptCommand(g),
		newPlanCommand(g),
		newDepsCommand(g),
	)
	setUsageTemplate(cmd)
	return cmd
}

func setUsageTemplate(cmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleHeading", heading)
	usageTemplate := strings.NewReplacer(
		`Usage:`, `{{StyleHeading "Usage:"}}`,
		`Examples:`, `{{StyleHeading "Examples:"}}`,
		`Available Commands:`, `{{StyleHeading "Available Commands:"}}`,
		`Additional Commands:`, `{{StyleHeading "Additional Commands:"}}`,
		`Flags:`, `{{StyleHeading "Options:"}}`,
		`Global Flags:`, `{{StyleHeading "Global Options:"}}`,
	).Replace(cmd.UsageTemplate())
	cmd.SetUsageTemplate(usageTemplate)
}

// Execute runs the command line args. Usage errors come back as an
// ExitError with code 2.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		color.NoColor = true
	}

	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		return usageError(err)
	}
	return err
}
