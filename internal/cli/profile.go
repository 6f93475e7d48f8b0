package cli

import (
	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Player profile commands",
	}

	cmd.AddCommand(newProfileCreateCmd())
	cmd.AddCommand(newProfileUpdateCmd())
	cmd.AddCommand(newProfileMeCmd())
	cmd.AddCommand(newProfileListCmd())
	cmd.AddCommand(newProfileDeleteCmd())

	return cmd
}

func newProfileCreateCmd() *cobra.Command {
	var team, position string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create your player profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"defaultTeam": team,
				"position":    position,
			}
			var result Profile

			if err := client.Post("/api/profile", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Default team (required)")
	cmd.Flags().StringVar(&position, "position", "", "Playing position")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newProfileUpdateCmd() *cobra.Command {
	var team, position string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your player profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"defaultTeam": team,
				"position":    position,
			}
			var result Profile

			if err := client.Put("/api/profile", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Default team")
	cmd.Flags().StringVar(&position, "position", "", "Playing position")

	return cmd
}

func newProfileMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show your player profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			if err := client.Get("/api/profile/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all player profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Profile

			if err := client.Get("/api/profile/all", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete your profile and user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/profile", nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Profile and user deleted.")
			return nil
		},
	}
}
