package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"careerline.app/studio/internal/client"
	"careerline.app/studio/internal/editor"
	"careerline.app/studio/internal/model"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a company's draft through the API",
	Long: `Load the draft (seeding it from live content when none exists), apply --set
changes and save. With --interactive, read commands from stdin while autosave runs:

  set <field> <value>
  add <section-type>
  show <section-id> | hide <section-id>
  save
  publish
  quit`,
	RunE: runEdit,
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a company's draft",
	RunE:  runPublish,
}

var (
	editCompanyID   int64
	editSets        []string
	editInteractive bool
	editPublish     bool
)

func init() {
	editCmd.Flags().Int64Var(&editCompanyID, "company-id", 0, "Company to edit")
	editCmd.Flags().StringArrayVar(&editSets, "set", nil, "field=value, may be repeated")
	editCmd.Flags().BoolVar(&editInteractive, "interactive", false, "Read edit commands from stdin")
	editCmd.Flags().BoolVar(&editPublish, "publish", false, "Publish after saving")
	_ = editCmd.MarkFlagRequired("company-id")

	publishCmd.Flags().Int64Var(&editCompanyID, "company-id", 0, "Company to publish")
	_ = publishCmd.MarkFlagRequired("company-id")

	rootCmd.AddCommand(editCmd, publishCmd)
}

func openEditor(cmd *cobra.Command) (*editor.Controller, error) {
	api := client.New(client.Config{
		BaseURL:   cfg.Editor.APIBaseURL,
		SessionID: cfg.Editor.SessionID,
	})

	loaded, err := editor.Load(cmd.Context(), api, editCompanyID)
	if err != nil {
		return nil, fmt.Errorf("loading draft: %s", editor.UserMessage(err))
	}
	if loaded.Seeded {
		fmt.Fprintln(cmd.OutOrStdout(), "no draft yet, starting from the live page")
	}
	return editor.NewController(api, editCompanyID, loaded), nil
}

func runEdit(cmd *cobra.Command, _ []string) error {
	ctrl, err := openEditor(cmd)
	if err != nil {
		return err
	}

	for _, kv := range editSets {
		field, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected field=value", kv)
		}
		if err := ctrl.SetField(field, value); err != nil {
			return fmt.Errorf("--set %q: %w", kv, err)
		}
	}

	if editInteractive {
		return interactive(cmd, ctrl)
	}

	if ctrl.Dirty() {
		if err := ctrl.Save(cmd.Context()); err != nil {
			return fmt.Errorf("saving: %s", editor.UserMessage(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved at %s\n", ctrl.LastSavedAt().Format("15:04:05"))
	}

	if editPublish {
		return publish(cmd, ctrl)
	}
	return nil
}

func runPublish(cmd *cobra.Command, _ []string) error {
	ctrl, err := openEditor(cmd)
	if err != nil {
		return err
	}
	return publish(cmd, ctrl)
}

func publish(cmd *cobra.Command, ctrl *editor.Controller) error {
	result, err := ctrl.Publish(cmd.Context())
	if err != nil {
		return fmt.Errorf("publishing: %s", editor.UserMessage(err))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "published at %s\n%s\n", result.PublishedAt.Format("15:04:05"), result.URL)
	return nil
}

func interactive(cmd *cobra.Command, ctrl *editor.Controller) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	autosaver := editor.NewAutosaver(ctrl, clockwork.NewRealClock(), cfg.Editor.AutosaveInterval)
	go autosaver.Run(ctx)
	defer autosaver.Stop()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, status(ctrl)+"> ")
		if !scanner.Scan() {
			break
		}
		quit, err := runLine(cmd, ctrl, out, scanner.Text())
		if err != nil {
			fmt.Fprintln(out, "error:", err)
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if ctrl.Dirty() {
		if err := ctrl.Save(ctx); err != nil {
			return fmt.Errorf("saving on exit: %s", editor.UserMessage(err))
		}
	}
	return nil
}

func runLine(cmd *cobra.Command, ctrl *editor.Controller, out io.Writer, line string) (bool, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch verb {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "set":
		field, value, _ := strings.Cut(rest, " ")
		return false, ctrl.SetField(field, value)
	case "add":
		sectionID, err := ctrl.AddSection(model.SectionType(rest))
		if err == nil {
			fmt.Fprintln(out, "added section", sectionID)
		}
		return false, err
	case "show", "hide":
		return false, ctrl.ToggleSection(rest, verb == "show")
	case "save":
		if err := ctrl.Save(cmd.Context()); err != nil {
			return false, fmt.Errorf("%s", editor.UserMessage(err))
		}
		return false, nil
	case "publish":
		return false, publish(cmd, ctrl)
	}
	return false, fmt.Errorf("unknown command %q", verb)
}

func status(ctrl *editor.Controller) string {
	switch {
	case ctrl.Saving():
		return "[saving]"
	case ctrl.Error() != "":
		return "[" + ctrl.Error() + "]"
	case ctrl.Dirty():
		return "[unsaved]"
	}
	return "[saved]"
}
