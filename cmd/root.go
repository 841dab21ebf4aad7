package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cidr-tools/cidrgrep/internal/cidrargs"
	"github.com/cidr-tools/cidrgrep/internal/config"
	"github.com/cidr-tools/cidrgrep/internal/errors"
	"github.com/cidr-tools/cidrgrep/internal/filter"
	"github.com/cidr-tools/cidrgrep/internal/highlight"
	"github.com/cidr-tools/cidrgrep/internal/logging"
	"github.com/cidr-tools/cidrgrep/internal/netset"
)

var (
	exprFlags    []string
	cidrFile     string
	invertMatch  bool
	countOnly    bool
	onlyMatching bool
	fieldNum     int
	colorMode    string
	configPath   string
	verbose      bool
	jsonLog      bool
)

var rootCmd = &cobra.Command{
	Use:   "cidrgrep [flags] [CIDR ...] [FILE]",
	Short: "Filter lines by whether an IP field matches one or more CIDRs",
	Long: `cidrgrep scans input lines, extracts a whitespace-delimited field,
parses it as an IPv4 or IPv6 address, and prints the lines whose address
falls inside the union of the given networks.

Expressions come from repeated -e flags, from a file of CIDRs (-C), and
from the trailing arguments. If the last trailing argument does not parse
as a network expression it names the input file; otherwise input is read
from stdin.

Note: a filename that is itself a valid CIDR or bare IP cannot be told
apart from an expression and will be treated as one. Use -e or stdin
redirection if your filenames look like addresses.`,
	Example: `  tail -f access.log | cidrgrep 10.0.0.0/8 192.168.1.0/24
  cidrgrep -c -e 2001:db8::/32 hosts.txt
  cidrgrep -v -C corp-ranges.txt -f 2 audit.log`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonLog, os.Stderr)
	},
	RunE: runRoot,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringArrayVarP(&exprFlags, "expr", "e", nil, "CIDR expression to match; can be given multiple times")
	rootCmd.Flags().StringVarP(&cidrFile, "cidr-file", "C", "", "File containing CIDRs, one per line (# comments allowed)")
	rootCmd.Flags().BoolVarP(&invertMatch, "invert-match", "v", false, "Select non-matching lines")
	rootCmd.Flags().BoolVarP(&countOnly, "count", "c", false, "Print only the number of selected lines")
	rootCmd.Flags().BoolVarP(&onlyMatching, "only-matching", "o", false, "Print only the selected IP field")
	rootCmd.Flags().IntVarP(&fieldNum, "field", "f", 1, "1-based field number containing the IP")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Highlight the matched field: auto, always or never")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Defaults file (default is ~/.config/cidrgrep/config.toml)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&jsonLog, "json-log", false, "Output debug logs in JSON format")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := applyDefaults(cmd); err != nil {
		return err
	}

	if fieldNum < 1 {
		return errors.UsageError("field number must be >= 1")
	}

	resolved, err := cidrargs.Resolve(exprFlags, cidrFile, args)
	if err != nil {
		return err
	}

	set, err := netset.Build(resolved.Expressions)
	if err != nil {
		return err
	}
	logging.Debug("built network set", "networks", set.Len())

	styler, err := highlight.New(colorMode, isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		return errors.UsageError(err.Error())
	}

	in := cmd.InOrStdin()
	if resolved.InputPath != "" {
		f, err := os.Open(resolved.InputPath)
		if err != nil {
			return errors.IOError(resolved.InputPath, err)
		}
		defer f.Close()
		in = f
	}

	opts := filter.Options{
		Set:          set,
		Field:        fieldNum,
		Invert:       invertMatch,
		Count:        countOnly,
		OnlyMatching: onlyMatching,
		Highlight:    styler,
	}

	_, err = filter.Run(opts, in, cmd.OutOrStdout())
	return err
}

// applyDefaults folds the defaults file into any flag the user left
// untouched. Explicit flags always win.
func applyDefaults(cmd *cobra.Command) error {
	var (
		defaults *config.Defaults
		err      error
	)
	if configPath != "" {
		defaults, err = config.Load(configPath)
	} else {
		defaults, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if defaults.Field > 0 && !cmd.Flags().Changed("field") {
		fieldNum = defaults.Field
	}
	if defaults.Color != "" && !cmd.Flags().Changed("color") {
		colorMode = defaults.Color
	}
	return nil
}
