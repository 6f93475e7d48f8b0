package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game-day commands",
	}

	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameDeleteCmd())
	cmd.AddCommand(newGamePlanCmd())
	cmd.AddCommand(newGameCloseCmd())
	cmd.AddCommand(newGameOpenCmd())
	cmd.AddCommand(newGameAvailabilityCmd())

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recent and upcoming games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList

			if err := client.Get("/api/games/recentGames", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCreateCmd() *cobra.Command {
	var date, name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game day (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"gameDate": date,
				"gameName": name,
			}
			var result Game

			if err := client.Post("/api/games/createGame", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Game date, e.g. 2024-06-01 (required)")
	cmd.Flags().StringVar(&name, "name", "", "Game name (required)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game day (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/games/deleteGame/"+args[0], nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game deleted.")
			return nil
		},
	}
}

func newGamePlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <game-id>",
		Short: "Show the planning view with both availability lists (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game

			if err := client.Get("/api/games/planTeamData/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <game-id>",
		Short: "Close registration and lock in the team (admin)",
		Args:  cobra.ExactArgs(1),
		RunE:  setGameClosed(true),
	}
}

func newGameOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <game-id>",
		Short: "Reopen registration (admin)",
		Args:  cobra.ExactArgs(1),
		RunE:  setGameClosed(false),
	}
}

func setGameClosed(closed bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		req := map[string]any{
			"gameId":     args[0],
			"gameClosed": closed,
		}
		var result Game

		if err := client.Post("/api/games/gameRegister", req, &result); err != nil {
			return err
		}

		out := NewOutput(cfg.Output)
		out.Print(result)
		return nil
	}
}

func newGameAvailabilityCmd() *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "availability <game-id>",
		Short: "Register your availability for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"gameId":          args[0],
				"playerAvailable": strconv.FormatBool(available),
			}
			var result Registration

			if err := client.Post("/api/player/playerRegister", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&available, "available", true, "Mark yourself available (use --available=false for unavailable)")

	return cmd
}
