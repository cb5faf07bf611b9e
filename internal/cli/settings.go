package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dylanshade/style-organizer/internal/models"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display preferences",
	}
	cmd.AddCommand(newSettingsShowCmd(a), newSettingsSetCmd(a))
	return cmd
}

func newSettingsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.newService()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(svc.Preferences(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return nil
		},
	}
}

func newSettingsSetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change preferences and write them to the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("full") && !cmd.Flags().Changed("font-size") {
				return fmt.Errorf("nothing to change: pass --full and/or --font-size")
			}

			svc, err := a.newService()
			if err != nil {
				return err
			}

			prefs := svc.Preferences()
			if cmd.Flags().Changed("full") {
				prefs.ShowFullPromptInfo, _ = cmd.Flags().GetBool("full")
			}
			if cmd.Flags().Changed("font-size") {
				size, _ := cmd.Flags().GetInt("font-size")
				if err := models.ValidateFontSize(size); err != nil {
					return err
				}
				prefs.FontSize = size
			}
			if err := svc.UpdatePreferences(prefs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved preferences to %s\n", a.cfg.SettingsPath)
			return nil
		},
	}
	cmd.Flags().Bool("full", true, "Show prompt and negative prompt in list labels")
	cmd.Flags().Int("font-size", 14, "List font size")
	return cmd
}
