package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hypertrophy/hypertrophy/internal/catalog"
	"github.com/hypertrophy/hypertrophy/internal/utils"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available training templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, state, err := loadState()
		if err != nil {
			return err
		}

		all := catalog.Templates(state)
		bold := color.New(color.Bold).SprintFunc()
		for _, key := range catalog.TemplateKeys(state) {
			t := all[key]
			tag := ""
			if t.IsCustom {
				tag = " (custom)"
			}
			days := make([]string, len(t.Split))
			for i, d := range t.Split {
				days[i] = d.Name
			}
			fmt.Printf("%s — %s%s\n", bold(key), t.Name, tag)
			fmt.Printf("  %d days: %s\n", t.Days, strings.Join(days, ", "))
		}
		return nil
	},
}

var addTemplateCmd = &cobra.Command{
	Use:   "add [template.toml]",
	Short: "Add a custom template from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := utils.ParseTemplateFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to parse template: %w", err)
		}

		st, state, err := loadState()
		if err != nil {
			return err
		}

		key := uuid.New().String()
		state.CustomTemplates[key] = *template

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Added custom template %s (%s, %d days)\n", template.Name, key, template.Days)
		return nil
	},
}

var removeTemplateCmd = &cobra.Command{
	Use:   "remove [template-key]",
	Short: "Remove a custom template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, state, err := loadState()
		if err != nil {
			return err
		}

		t, ok := state.CustomTemplates[args[0]]
		if !ok {
			return fmt.Errorf("No custom template with key %q", args[0])
		}
		delete(state.CustomTemplates, args[0])

		if err := persist(st, state); err != nil {
			return err
		}

		fmt.Printf("✅ Removed custom template %s\n", t.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(addTemplateCmd)
	templatesCmd.AddCommand(removeTemplateCmd)
}
