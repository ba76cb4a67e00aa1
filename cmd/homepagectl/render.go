package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	homeuc "github.com/kailas-cloud/homepage/internal/usecase/home"
	"github.com/kailas-cloud/homepage/internal/view"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the home page to stdout or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			lang, _ := cmd.Flags().GetString("lang")
			out, _ := cmd.Flags().GetString("out")

			f, err := view.ParseFormat(format)
			if err != nil {
				return err
			}
			locale, err := homeuc.ParseLocale(lang)
			if err != nil {
				return err
			}

			svc, err := homeuc.New(locale)
			if err != nil {
				return fmt.Errorf("load page content: %w", err)
			}

			var buf bytes.Buffer
			if err := view.Render(&buf, svc.Home(), f); err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, buf.Len())
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", string(view.FormatHTML), "Output format: html or json")
	cmd.Flags().StringP("lang", "l", string(homeuc.LocaleEN), "Page locale: en or zh")
	cmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	return cmd
}
