package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and save credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildAuthService(cmd)
		if err != nil {
			return err
		}

		fmt.Print("Username: ")
		reader := bufio.NewReader(os.Stdin)
		username, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read username: %w", err)
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := svc.Login(ctx, strings.TrimSpace(username), string(password)); err != nil {
			return err
		}

		fmt.Println("Signed in as", svc.Session().User.Username)
		return nil
	},
}
