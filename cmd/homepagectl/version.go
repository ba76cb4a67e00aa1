package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/homepage/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "homepagectl", version.String())
		},
	}
}
