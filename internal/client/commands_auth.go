package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/vibe-vault/models"
)

func (a *App) registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.api.Register(cmd.Context(), models.RegisterRequest{Username: args[0], Password: args[1]})
			if err != nil {
				return fmt.Errorf("register: %w", err)
			}

			if a.asJSON {
				return a.printJSON(resp)
			}
			_, err = fmt.Fprintf(a.out, "%s: %s\n", resp.Message, resp.Username)
			return err
		},
	}
}

// loginCommand prints the issued token so it can be exported as
// VIBEVAULT_TOKEN for later commands.
func (a *App) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Obtain a bearer token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.api.Login(cmd.Context(), models.LoginRequest{Username: args[0], Password: args[1]})
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if a.asJSON {
				return a.printJSON(resp)
			}
			_, err = fmt.Fprintln(a.out, resp.Token)
			return err
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, line := range a.buildLines {
				if _, err := fmt.Fprintln(a.out, line); err != nil {
					return err
				}
			}

			version, err := a.api.ServerVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			_, err = fmt.Fprintf(a.out, "Server version: %s\n", version)
			return err
		},
	}
}
