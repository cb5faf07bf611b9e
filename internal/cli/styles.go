package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dylanshade/style-organizer/internal/models"
	"github.com/dylanshade/style-organizer/internal/store"
)

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list <table.csv>",
		Aliases: []string{"ls"},
		Short:   "List the styles in a table",
		Long: `List prints one line per style, prefixed with its index. Labels follow
the show_full_prompt_info preference unless --full is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.openTable(args[0])
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			full := svc.Preferences().ShowFullPromptInfo
			if cmd.Flags().Changed("full") {
				full, _ = cmd.Flags().GetBool("full")
			}
			return writeStyles(cmd.OutOrStdout(), svc.Styles(), format, full)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().Bool("full", false, "Include prompt and negative prompt in text output")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <table.csv>",
		Short: "Export a table as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.openTable(args[0])
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported export format %q (use json or yaml)", format)
			}

			out := cmd.OutOrStdout()
			if output, _ := cmd.Flags().GetString("output"); output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}
			return writeStyles(out, svc.Styles(), format, true)
		},
	}
	cmd.Flags().StringP("format", "f", "json", "Export format: json or yaml")
	cmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	return cmd
}

func writeStyles(w io.Writer, styles []models.Style, format string, full bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(styles)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(styles); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		for i, style := range styles {
			fmt.Fprintf(tw, "%d\t%s\n", i, style.Label(full))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q (use text, json or yaml)", format)
	}
}

func addPositionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("above", store.NoAnchor, "Insert above the style at this index")
	cmd.Flags().Int("below", store.NoAnchor, "Insert below the style at this index")
	cmd.MarkFlagsMutuallyExclusive("above", "below")
}

// positionFromFlags defaults to appending when neither flag is given
func positionFromFlags(cmd *cobra.Command) store.Position {
	if cmd.Flags().Changed("above") {
		anchor, _ := cmd.Flags().GetInt("above")
		return store.AbovePosition(anchor)
	}
	if cmd.Flags().Changed("below") {
		anchor, _ := cmd.Flags().GetInt("below")
		return store.BelowPosition(anchor)
	}
	return store.AppendPosition()
}

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <table.csv>",
		Short: "Add a style to a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.openTable(args[0])
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			prompt, _ := cmd.Flags().GetString("prompt")
			negative, _ := cmd.Flags().GetString("negative")

			ia, err := svc.BeginAdd(positionFromFlags(cmd))
			if err != nil {
				return err
			}
			idx, err := ia.Confirm(models.Style{Name: name, Prompt: prompt, NegativePrompt: negative})
			if err != nil {
				return err
			}
			if err := svc.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q at index %d\n", name, idx)
			return nil
		},
	}
	cmd.Flags().StringP("name", "n", "", "Style name")
	cmd.Flags().StringP("prompt", "p", "", "Prompt text")
	cmd.Flags().String("negative", "", "Negative prompt text")
	addPositionFlags(cmd)
	return cmd
}

func newSeparatorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "separator <table.csv>",
		Aliases: []string{"spacer"},
		Short:   "Insert a separator row into a table",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.openTable(args[0])
			if err != nil {
				return err
			}
			idx, err := svc.AddSeparator(positionFromFlags(cmd))
			if err != nil {
				return err
			}
			if err := svc.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added separator at index %d\n", idx)
			return nil
		},
	}
	addPositionFlags(cmd)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <table.csv> <index>",
		Aliases: []string{"rm"},
		Short:   "Delete a style from a table",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			svc, err := a.openTable(args[0])
			if err != nil {
				return err
			}

			ia, err := svc.BeginDelete(index)
			if err != nil {
				return err
			}
			if ia == nil {
				return fmt.Errorf("no style at index %d", index)
			}

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete %q? [y/N]: ", ia.Initial().Name)
				yes = readConfirmation(cmd.InOrStdin())
			}
			if !yes {
				ia.Cancel()
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}

			if _, err := ia.Confirm(ia.Initial()); err != nil {
				return err
			}
			if err := svc.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", ia.Initial().Name)
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "move <table.csv> <from> <to>",
		Aliases: []string{"mv"},
		Short:   "Move a style to another position",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			to, err := parseIndex(args[2])
			if err != nil {
				return err
			}
			svc, err := a.openTable(args[0])
			if err != nil {
				return err
			}
			if err := svc.Move(from, to); err != nil {
				return err
			}
			if err := svc.Save(""); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved style %d to %d\n", from, to)
			return nil
		},
	}
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	return index, nil
}

func readConfirmation(r io.Reader) bool {
	line, _ := bufio.NewReader(r).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
