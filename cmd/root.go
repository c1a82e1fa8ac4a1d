package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/byfernandatovar/byfernandatovar/cmd/http"
	systemcmd "github.com/byfernandatovar/byfernandatovar/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "fernanda",
	Short: "Backend for byfernandatovar.com, a wedding photography portfolio site.",
	Long: `Backend for byfernandatovar.com. It serves the portfolio galleries from
the Sanity content lake and delivers contact form inquiries to the studio inbox.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
