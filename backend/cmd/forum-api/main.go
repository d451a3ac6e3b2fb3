package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configFolder string

var rootCommand = &cobra.Command{
	Use:   "forum-api",
	Short: "Discussion forum JSON API",
}

func init() {
	rootCommand.PersistentFlags().StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	rootCommand.AddCommand(serveCommand, tokenCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
