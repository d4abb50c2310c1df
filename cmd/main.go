package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"clinic-portal/cmd/bootstrap"
	"clinic-portal/internal/converter"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/pkg/apperror"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-portal",
		Short: "Role based clinic portal over a remote clinical store",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(resolveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application with all dependencies
			app, err := bootstrap.New()
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			return app.Run()
		},
	}
}

func resolveCmd() *cobra.Command {
	var (
		role    string
		id      string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an identifier and role to an identity without starting a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedRole, err := entity.ParseRole(role)
			if err != nil {
				return err
			}

			app, identityUsecase, err := bootstrap.NewResolver()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			identity, err := identityUsecase.Resolve(ctx, id, parsedRole)
			if err != nil {
				return fmt.Errorf("login failed (%s): %s", apperror.KindOf(err), apperror.MessageOf(err))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(converter.IdentityToResponse(identity))
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Doctor, Nurse or Patient")
	cmd.Flags().StringVar(&id, "id", "", "numeric identifier")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "overall timeout")
	cmd.MarkFlagRequired("role")
	cmd.MarkFlagRequired("id")

	return cmd
}
