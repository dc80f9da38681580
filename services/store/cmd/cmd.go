package cmd

import (
	"github.com/Nugamoto/bestbuy2.0/pkg/cmd/cobra"
)

//nolint:gochecknoinits
func init() {
	cmdRoot.AddCommand(cmdRun)

	cobra.LoadFlagEnv(cmdRoot.PersistentFlags(), &envFile)
}

var (
	envFile string
	cmdRoot = cobra.CmdRoot(&envFile)
	cmdRun  = cobra.CmdRunService(runService)
)

func Run() error {
	return cmdRoot.Execute()
}
