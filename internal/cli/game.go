package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jpmeyers/santaswap/internal/dependencies/clock"
	"github.com/jpmeyers/santaswap/internal/dependencies/random"
	"github.com/jpmeyers/santaswap/internal/model"
	"github.com/jpmeyers/santaswap/internal/services/assignment"
	"github.com/jpmeyers/santaswap/internal/services/auth"
	"github.com/jpmeyers/santaswap/internal/services/game"
	"github.com/jpmeyers/santaswap/internal/services/setup"
	"github.com/jpmeyers/santaswap/internal/storage/memory"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameLoadCmd())
	cmd.AddCommand(newGameShareCmd())

	return cmd
}

// parseParticipantFlag splits one --participant value:
// "Name:birthYear:interest1,interest2[:gift preferences]".
// Field validation is left to the setup flow.
func parseParticipantFlag(raw string) (setup.DraftParticipant, error) {
	parts := strings.SplitN(raw, ":", 4)
	if len(parts) < 3 {
		return setup.DraftParticipant{}, fmt.Errorf(
			"invalid participant %q: expected name:birthYear:interests[:preferences]", raw)
	}

	draft := setup.DraftParticipant{
		Name:      strings.TrimSpace(parts[0]),
		BirthYear: strings.TrimSpace(parts[1]),
		Interests: parts[2],
	}
	if len(parts) == 4 {
		draft.GiftPreferences = strings.TrimSpace(parts[3])
	}
	return draft, nil
}

func newGameCreateCmd() *cobra.Command {
	var participantFlags []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new gift exchange",
		Long: `Create a new gift exchange from a participant list.

The roster is collected, reviewed and confirmed locally, including the
match draw, and only the finished record is sent to the server. Each
participant's birth year doubles as their login secret.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			local, err := runLocalSetup(cmd.Context(), participantFlags)
			if err != nil {
				return err
			}

			var created CreateResult
			body := map[string]any{
				"action":   "create",
				"gameData": payloadFromGame(local),
			}
			if err := client.Post("/api/game", body, &created); err != nil {
				return err
			}

			names := make([]string, len(local.Participants))
			for i, p := range local.Participants {
				names[i] = string(p.ID)
			}
			created.ShareMessage = shareMessage(cfg.ServerURL, created.GameCode, names)

			out := NewOutput(cfg.Output)
			out.Print(created)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&participantFlags, "participant", "p", nil,
		"Participant as name:birthYear:interests[:preferences] (repeatable)")
	_ = cmd.MarkFlagRequired("participant")

	return cmd
}

// runLocalSetup walks the setup flow against local storage and returns the
// confirmed record. The local code is discarded; the server mints its own.
func runLocalSetup(ctx context.Context, participantFlags []string) (*model.Game, error) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	rnd := random.New()
	orch := setup.New(
		assignment.New(rnd, logger),
		game.NewController(memory.New(), clock.New(), rnd, logger),
		auth.New(),
		logger,
	)

	sess := setup.NewSession()
	for i, raw := range participantFlags {
		draft, err := parseParticipantFlag(raw)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			if err := orch.AddParticipant(sess); err != nil {
				return nil, err
			}
		}
		if err := orch.UpdateParticipant(sess, i, draft); err != nil {
			return nil, err
		}
	}

	if err := orch.Submit(sess); err != nil {
		return nil, err
	}
	return orch.Confirm(ctx, sess)
}

// payloadFromGame converts a confirmed record to the create wire shape
func payloadFromGame(g *model.Game) map[string]any {
	matches := make(map[string]string, len(g.Assignment))
	for giver, recipient := range g.Assignment {
		matches[string(giver)] = string(recipient)
	}

	demographics := make(map[string]Demographics, len(g.Participants))
	users := make(map[string]string, len(g.Participants))
	for _, p := range g.Participants {
		demographics[string(p.ID)] = Demographics{
			BirthYear:       p.BirthYear,
			Interests:       p.Interests,
			GiftPreferences: p.GiftPreferences,
		}
		users[string(p.ID)] = p.Secret
	}

	return map[string]any{
		"matches":          matches,
		"userDemographics": demographics,
		"users":            users,
	}
}

func newGameLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <code>",
		Short: "Load an existing game by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameView

			body := map[string]string{
				"action":   "load",
				"gameCode": args[0],
			}
			if err := client.Post("/api/game", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <code>",
		Short: "Print the share message for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var view GameView

			body := map[string]string{
				"action":   "load",
				"gameCode": args[0],
			}
			if err := client.Post("/api/game", body, &view); err != nil {
				return err
			}

			names := make([]string, 0, len(view.Users))
			for name := range view.Users {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Println(shareMessage(cfg.ServerURL, args[0], names))
			return nil
		},
	}
}

func shareMessage(serverURL, code string, names []string) string {
	url := strings.TrimSuffix(serverURL, "/") + "?code=" + code
	return fmt.Sprintf(
		"Ready to play Secret Santa with %s? Log in at %s to see your match and get gift ideas! 🎄🎁",
		strings.Join(names, ", "), url)
}
