package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"shortcuts/editor"
)

func newBoldCmd() *cobra.Command {
	var start, end int
	cmd := &cobra.Command{
		Use:   "bold TEXT",
		Short: "Toggle ** markers around a selection of TEXT",
		Long: `Wraps the rune range [start, end) of TEXT in ** markers, or removes them if
the selection is already a **...** span. Prints {"text","caret"} as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("end") {
				end = len([]rune(args[0]))
			}
			e, err := editor.ToggleBold(args[0], start, end)
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(e)
		},
	}
	cmd.Flags().IntVar(&start, "start", 0, "selection start (rune offset)")
	cmd.Flags().IntVar(&end, "end", 0, "selection end, exclusive (default: end of text)")
	return cmd
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render TEXT",
		Short: "Render **bold** spans in TEXT as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), editor.RenderBold(args[0]))
			return nil
		},
	}
}
