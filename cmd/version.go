package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/korliakov/TensorBackend/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetVersionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
