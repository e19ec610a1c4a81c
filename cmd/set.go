package cmd

import (
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <ip>",
	Short: "Save a server address without opening the form",
	Long: `Validate an IPv4 address and write it into the X-TICKET extension.

The three files are written in order: config.content.js, config.module.js,
manifest.json. If one of them fails the remaining files are left alone and
the files already written keep the new address.`,
	Example: `  xticket-ip set 100.7.163.55
  xticket-ip set 10.0.0.1 --open-admin`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	openAdmin, _ := cmd.Flags().GetBool("open-admin")
	return newFormCmd().Set(cmd.Context(), SetInput{
		FormOpenInput: FormOpenInput{OpenAdmin: openAdmin},
		Address:       args[0],
	})
}
