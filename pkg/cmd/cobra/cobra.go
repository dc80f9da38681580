// Package cobra wraps the spf13/cobra commands the services share: a root
// command that can preload an env file and a run command around the service
// loop.
package cobra

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const flagEnvFile = "env-file"

// LoadFlagEnv registers the --env-file persistent flag backed by envFile.
func LoadFlagEnv(flags *pflag.FlagSet, envFile *string) {
	flags.StringVar(envFile, flagEnvFile, "", "env file loaded before the config is parsed")
}

// CmdRoot builds the root command. When the env-file flag is set, the file
// is loaded into the environment before any subcommand runs.
func CmdRoot(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:           "store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if *envFile == "" {
				return nil
			}

			return godotenv.Load(*envFile)
		},
	}
}

// CmdRunService builds the run subcommand around the service loop.
func CmdRunService(run func(ctx context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "run the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
}
