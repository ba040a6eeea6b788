package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Thomaslgrn/pdftotexte/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// settings collects environment variables and bound flags.
var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "pdftotexte",
	Short: "HTTP service extracting plain text from uploaded PDF files",
	Long: `pdftotexte serves POST /extract, which takes a multipart PDF upload and
returns its text page by page, plus GET / and GET /health probes.

Settings come from flags, then environment variables (PORT, SERVER_PORT, HOST,
LOG_LEVEL, PDF_ENGINE, MULTIPART_MAX_MEMORY), then a .env file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load environment variables from .env file
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: .env file could not be loaded: %v\n", err)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(config.NewConfigFrom(settings))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("host", "", "interface to bind (default 0.0.0.0)")
	flags.String("port", "", "port to listen on (default 8000)")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("pdf-engine", "", "fitz (MuPDF) or ledongthuc (pure Go)")

	_ = settings.BindPFlag(config.KeyHost, flags.Lookup("host"))
	_ = settings.BindPFlag(config.KeyPort, flags.Lookup("port"))
	_ = settings.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = settings.BindPFlag(config.KeyPDFEngine, flags.Lookup("pdf-engine"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
