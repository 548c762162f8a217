package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and delete saved credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildAuthService(cmd)
		if err != nil {
			return err
		}
		svc.Logout()
		fmt.Println("Signed out.")
		return nil
	},
}
