package main

import (
	"context"
	"fmt"
	"log/slog"

	"raffle-draw/cmd/bootstrap"
	"raffle-draw/internal/domain/user"
	"raffle-draw/internal/pkg/jwt"
	"raffle-draw/internal/usecase/commands"
	"raffle-draw/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// runOnce starts the core graph without the server or the queue worker, runs
// fn and stops again.
func runOnce(ctx context.Context, fn any) error {
	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Invoke(fn),
	)
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return err
	}
	if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
		slog.Warn("shutdown after command failed", "error", err)
	}
	return nil
}

func newPurgeCmd() *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every stored verification record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return fmt.Errorf("refusing to purge without --yes")
			}
			var runErr error
			err := runOnce(cmd.Context(), func(verifications commands.VerificationCommands) {
				n, err := verifications.PurgeAll(cmd.Context())
				if err != nil {
					runErr = err
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d verification records\n", n)
			})
			if err != nil {
				return err
			}
			return runErr
		},
	}
	cmd.Flags().BoolVar(&confirm, "yes", false, "confirm the purge")
	return cmd
}

func newAbortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abort <raffle-key>",
		Short: "Release the in-progress marker of a raffle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var runErr error
			err := runOnce(cmd.Context(), func(guard commands.DuplicateGuard) {
				if err := guard.AbortDraw(cmd.Context(), args[0]); err != nil {
					runErr = err
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "released %s\n", args[0])
			})
			if err != nil {
				return err
			}
			return runErr
		},
	}
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <draw-id>",
		Short: "Print the stored verification payload and signature of a draw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			drawID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid draw id: %w", err)
			}
			var runErr error
			err = runOnce(cmd.Context(), func(q queries.VerificationQueries) {
				rec, err := q.GetByDrawID(cmd.Context(), drawID)
				if err != nil {
					runErr = err
					return
				}
				payload, err := rec.VerificationPayload()
				if err != nil {
					runErr = err
					return
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "raffle:    %s\n", rec.RaffleKey)
				fmt.Fprintf(out, "numbers:   %v\n", rec.Numbers())
				fmt.Fprintf(out, "serial:    %d\n", rec.Proof.SerialNumber)
				fmt.Fprintf(out, "random:\n%s\n", payload)
				fmt.Fprintf(out, "signature:\n%s\n", rec.Proof.Signature)
			})
			if err != nil {
				return err
			}
			return runErr
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		name string
		role string
	)
	cmd := &cobra.Command{
		Use:   "token <caller-id>",
		Short: "Issue an API token for a caller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := user.NewRole(role)
			if err != nil {
				return err
			}
			var runErr error
			err = runOnce(cmd.Context(), func(svc *jwt.Service) {
				token, err := svc.GenerateToken(user.Identity{ID: args[0], Name: name, Role: r})
				if err != nil {
					runErr = err
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), token)
			})
			if err != nil {
				return err
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name embedded in the token")
	cmd.Flags().StringVar(&role, "role", string(user.RoleCaller), "caller or admin")
	return cmd
}
