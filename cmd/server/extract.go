package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Thomaslgrn/pdftotexte/internal/config"
	"github.com/Thomaslgrn/pdftotexte/internal/domain"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract text from a local PDF and print the JSON result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := config.NewContainer(config.NewConfigFrom(settings))
		if err != nil {
			return err
		}
		defer container.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		// A local file is taken to be a PDF; the server applies the content type check.
		result, err := container.Extractor.Extract(cmd.Context(), &domain.UploadedFile{
			Filename:    filepath.Base(args[0]),
			ContentType: domain.PDFMimeType,
			Size:        info.Size(),
			Reader:      f,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
