package main

import (
	"context"
	"fmt"
	"os"

	"github.com/railwayapp/cli/cmd"
	"github.com/railwayapp/cli/constants"
	"github.com/railwayapp/cli/entity"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "railway",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "🚅 Railway. Infrastructure, Instantly.",
	Long:          "Interact with 🚅 Railway via CLI \n\n Deploy infrastructure, instantly. Docs: https://docs.railway.com",
}

// contextualize converts a HandlerFunction to a cobra function
func contextualize(fn entity.HandlerFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func init() {
	handler, err := cmd.New()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Login to Railway",
		RunE:  contextualize(handler.Login),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Logout of Railway",
		RunE:  contextualize(handler.Logout),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "Show the currently logged in user",
		RunE:  contextualize(handler.Whoami),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:               "link",
		Short:             "Link the current directory to a project",
		PersistentPreRunE: contextualize(handler.CheckVersion),
		RunE:              contextualize(handler.Link),
	})
	unlinkCmd := &cobra.Command{
		Use:   "unlink",
		Short: "Unlink the current directory from its project",
		RunE:  contextualize(handler.Unlink),
	}
	unlinkCmd.Flags().Bool("service", false, "only unlink the service, keep the project")
	rootCmd.AddCommand(unlinkCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "service [id]",
		Short: "Link a service to the current directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  contextualize(handler.Service),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the linked project for the current directory",
		RunE:  contextualize(handler.Status),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "open",
		Short: "Open the linked project in the browser",
		RunE:  contextualize(handler.Open),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "docs",
		Short: "Open Railway Docs in browser",
		RunE:  contextualize(handler.Docs),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:               "version",
		Short:             "Get version of the Railway CLI",
		PersistentPreRunE: contextualize(handler.CheckVersion),
		RunE:              contextualize(handler.Version),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
