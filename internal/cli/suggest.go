package cli

import (
	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	var (
		name   string
		secret string
	)

	cmd := &cobra.Command{
		Use:   "suggest <code>",
		Short: "Get gift ideas for your match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SuggestionsResult

			body := map[string]string{
				"gameCode": args[0],
				"name":     name,
				"secret":   secret,
			}
			if err := client.Post("/api/gifts", body, &result); err != nil {
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
