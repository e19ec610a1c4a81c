package cmd

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/dalseo/xticket-ip/internal/extension"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Metadata is stamped into the binary at build time.
type Metadata struct {
	Version string
	Commit  string
	Date    string
}

var metadata Metadata

// log is the diagnostic trace; it stays quiet unless --debug is set.
var log = pterm.DefaultLogger.WithLevel(pterm.LogLevelWarn)

var rootCmd = &cobra.Command{
	Use:   "xticket-ip",
	Short: "Point the X-TICKET Chrome extension at a Dalseo server",
	Long: `Point the X-TICKET Chrome extension at a Dalseo API server.

The extension must be unpacked at:
  <home>/Desktop/달서프로그램/X-TICKET_크롬_확장프로그램

Running without a subcommand opens the address form. Saving rewrites
config.content.js, config.module.js and the host_permissions of
manifest.json. Reload the extension in Chrome after saving.`,
	Example: `  # Open the address form
  xticket-ip

  # Save an address without the form
  xticket-ip set 100.7.163.55

  # Show what the extension currently points at
  xticket-ip show`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runForm,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Print a diagnostic trace")
	rootCmd.PersistentFlags().Bool("open-admin", false, "Open the X-TICKET admin page after a successful save")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(showCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute(m Metadata) {
	metadata = m

	// An optional .env next to the operator's working directory may turn on
	// XTICKET_IP_DEBUG; a missing file is fine.
	_ = godotenv.Load()

	opts := []fang.Option{fang.WithVersion(m.Version), fang.WithErrorHandler(reportError)}
	if m.Commit != "" {
		opts = append(opts, fang.WithCommit(m.Commit))
	}
	if err := fang.Execute(context.Background(), rootCmd, opts...); err != nil {
		os.Exit(1)
	}
}

// reportError prints errors fang would show. Extension errors already had
// their dialog, so only the exit code reports them.
func reportError(w io.Writer, styles fang.Styles, err error) {
	if extension.KindOf(err) != extension.KindNone {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if debugEnabled(cmd.Flags()) {
		pterm.EnableDebugMessages()
		log.Level = pterm.LogLevelTrace
		log.Trace("diagnostic trace enabled", log.Args("version", metadata.Version))
	}
	return nil
}

func debugEnabled(fs *pflag.FlagSet) bool {
	if on, _ := fs.GetBool("debug"); on {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("XTICKET_IP_DEBUG"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
