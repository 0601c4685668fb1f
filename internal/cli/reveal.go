package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRevealCmd() *cobra.Command {
	var (
		name   string
		secret string
	)

	cmd := &cobra.Command{
		Use:   "reveal <code>",
		Short: "Reveal your match in a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RevealResult

			body := map[string]string{
				"name":   name,
				"secret": secret,
			}
			if err := client.Post(fmt.Sprintf("/api/game/%s/reveal", args[0]), body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Your name in the game")
	cmd.Flags().StringVarP(&secret, "secret", "s", "", "Your login secret (birth year)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}
