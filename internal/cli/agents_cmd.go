package cli

import (
	"fmt"
	"strings"

	"github.com/beofficial/commandcenter/internal/domain"
	"github.com/beofficial/commandcenter/internal/roster"
	"github.com/spf13/cobra"
)

func newAgentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Inspect and edit the agent roster",
	}

	cmd.AddCommand(newAgentsListCmd())
	cmd.AddCommand(newAgentsShowCmd())
	cmd.AddCommand(newAgentsSetCmd())
	return cmd
}

func newAgentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all agents with their roster status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := roster.NewDefault()
			statuses := domain.DefaultStatuses()

			for _, a := range store.List() {
				st, ok := statuses[a.Codename]
				if !ok {
					fmt.Printf("  %-10s %-22s\n", a.Codename, a.Name)
					continue
				}
				fmt.Printf("  %-10s %-22s %-14s %3.0f%%  %s\n",
					a.Codename, a.Name, st.Status, st.Progress*100, st.NextAction)
			}
			return nil
		},
	}
}

func newAgentsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <codename>",
		Short: "Show the full profile of one agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := roster.NewDefault()
			agent, err := store.Get(args[0])
			if err != nil {
				return err
			}
			printAgent(agent)
			return nil
		},
	}
}

func newAgentsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <codename> <field> <value...>",
		Short: "Set a profile field (edits apply to the current session only)",
		Long: "Set a text field to the joined value, or replace a list field with one\n" +
			"entry per argument. Blank list entries are dropped. Fields: " +
			strings.Join(roster.Fields(), ", ") + ".",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := roster.NewDefault()
			codename, field := args[0], args[1]

			var err error
			if roster.IsListField(field) {
				err = store.SetList(codename, field, args[2:])
			} else {
				err = store.SetText(codename, field, strings.Join(args[2:], " "))
			}
			if err != nil {
				return err
			}

			// Rename moves the record under its new codename.
			lookup := codename
			if field == roster.FieldCodename {
				lookup = args[2]
			}
			agent, err := store.Get(lookup)
			if err != nil {
				return err
			}
			printAgent(agent)
			return nil
		},
	}
}

func printAgent(a domain.AgentProfile) {
	fmt.Printf("%s (%s)\n", a.Name, a.Codename)
	fmt.Printf("  Mission:    %s\n", a.Mission)
	fmt.Printf("  Audience:   %s\n", a.TargetAudience)
	fmt.Printf("  Value:      %s\n", a.ValueProposition)
	printList("Core tasks", a.CoreTasks)
	printList("Inputs", a.Inputs)
	printList("Outputs", a.Outputs)
	printList("Data sources", a.DataSources)
	printList("KPIs", a.KPIs)
	printList("Guardrails", a.Guardrails)
	if a.Notes != nil {
		fmt.Printf("  Notes:      %s\n", *a.Notes)
	}
	printList("Example prompts", a.ExamplePrompts)
}

func printList(label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("  %s:\n", label)
	for _, item := range items {
		fmt.Printf("    - %s\n", item)
	}
}
