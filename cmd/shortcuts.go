package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shortcuts/shortcut"
)

func newAddCmd(a *app) *cobra.Command {
	return needsStore(&cobra.Command{
		Use:   "add NAME CONTENT",
		Short: "Create or update a shortcut",
		Long:  `Stores CONTENT under NAME. The name is trimmed; an existing shortcut with the same name is updated in place.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.manager.Upsert(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s %s\n", res.Outcome, res.Shortcut.Name)
			warn(cmd, res)
			return nil
		},
	})
}

func newGetCmd(a *app) *cobra.Command {
	return needsStore(&cobra.Command{
		Use:   "get NAME",
		Short: "Print the content of a shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, ok := a.manager.Expand(args[0])
			if !ok {
				return fmt.Errorf("no shortcut named %q", strings.TrimSpace(args[0]))
			}
			fmt.Fprint(cmd.OutOrStdout(), sc.Content)
			return nil
		},
	})
}

func newListCmd(a *app) *cobra.Command {
	return needsStore(&cobra.Command{
		Use:   "list",
		Short: "List all shortcuts in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := a.manager.List()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No shortcuts defined.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, sc := range items {
				fmt.Fprintf(tw, "%s\t%s\n", sc.Name, preview(sc.Content))
			}
			return tw.Flush()
		},
	})
}

func newClearCmd(a *app) *cobra.Command {
	var yes bool
	cmd := needsStore(&cobra.Command{
		Use:   "clear",
		Short: "Delete every shortcut",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := len(a.manager.List())
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete all %d shortcuts? [y/N] ", n)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
			res := a.manager.ClearAll()
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s %d shortcuts\n", res.Outcome, n)
			warn(cmd, res)
			return nil
		},
	})
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newRecentCmd(a *app) *cobra.Command {
	return needsStore(&cobra.Command{
		Use:   "recent",
		Short: "List recently expanded shortcuts, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.manager.Recent() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})
}

func warn(cmd *cobra.Command, res shortcut.Result) {
	if res.Warning != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; the change was not saved\n", res.Warning)
	}
}

// preview returns the first line of content, shortened for one-line listings.
func preview(content string) string {
	line, _, more := strings.Cut(content, "\n")
	r := []rune(line)
	if len(r) > 60 {
		return string(r[:57]) + "..."
	}
	if more {
		return line + " ..."
	}
	return line
}
