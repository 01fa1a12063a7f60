package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gavel/internal/assignments"
	"gavel/internal/courtapi"
)

func newAssignmentsCommand(ctx *commandContext) *cobra.Command {
	assignmentsCmd := &cobra.Command{
		Use:   "assignments",
		Short: "Manage which users are assigned to a case",
	}

	assignmentsCmd.AddCommand(newAssignmentsListCommand(ctx))
	assignmentsCmd.AddCommand(newAssignmentsAvailableCommand(ctx))
	assignmentsCmd.AddCommand(newAssignmentsAddCommand(ctx))
	assignmentsCmd.AddCommand(newAssignmentsRemoveCommand(ctx))

	return assignmentsCmd
}

func caseLedger(ctx *commandContext, cmd *cobra.Command, caseID int64) (*assignments.Ledger, error) {
	client, err := ctx.apiClient()
	if err != nil {
		return nil, err
	}
	ledger := assignments.NewLedger(client, caseID, ctx.ensureLogger())
	if err := ledger.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return ledger, nil
}

func newAssignmentsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list <case-id>",
		Short: "List the users assigned to a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			ledger, err := caseLedger(ctx, cmd, caseID)
			if err != nil {
				return err
			}
			assigned := ledger.Assignments()
			if jsonOutput {
				return writeJSON(cmd, assigned)
			}

			rows := make([][]string, 0, len(assigned))
			for _, a := range assigned {
				rows = append(rows, []string{
					strconv.FormatInt(a.ID, 10),
					a.UserName,
					a.UserEmail,
					a.DateAssigned,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "User", "Email", "Assigned"},
				rows,
				[]columnAlignment{alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newAssignmentsAvailableCommand(ctx *commandContext) *cobra.Command {
	var filter string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "available <case-id>",
		Short: "List the users not yet assigned to a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			ledger, err := caseLedger(ctx, cmd, caseID)
			if err != nil {
				return err
			}
			available := ledger.FilterUsers(filter)
			if jsonOutput {
				return writeJSON(cmd, available)
			}

			rows := make([][]string, 0, len(available))
			for _, u := range available {
				rows = append(rows, []string{
					strconv.FormatInt(u.ID, 10),
					u.Name,
					u.Email,
					string(u.Role),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Email", "Role"},
				rows,
				[]columnAlignment{alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter users by name, email, or role")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newAssignmentsAddCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <case-id> <user-id>",
		Short: "Assign a user to a case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			userID, err := parseID(args[1], "user id")
			if err != nil {
				return err
			}
			ledger, err := caseLedger(ctx, cmd, caseID)
			if err != nil {
				return err
			}
			if err := ledger.Add(cmd.Context(), userID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned user %d to case %d (%d assigned)\n",
				userID, caseID, len(ledger.Assignments()))
			return nil
		},
	}
	return cmd
}

func newAssignmentsRemoveCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <case-id> <assignment-id>",
		Short: "Remove an assignment from a case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			assignmentID, err := parseID(args[1], "assignment id")
			if err != nil {
				return err
			}
			ledger, err := caseLedger(ctx, cmd, caseID)
			if err != nil {
				return err
			}
			target, ok := findAssignment(ledger.Assignments(), assignmentID)
			if !ok {
				return fmt.Errorf("assignment %d not found on case %d", assignmentID, caseID)
			}
			if !yes {
				confirmed, err := confirmOnTTY(cmd, fmt.Sprintf("Remove %s from case %d?", target.UserName, caseID))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}
			if err := ledger.Remove(cmd.Context(), assignmentID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed assignment %d from case %d (%d assigned)\n",
				assignmentID, caseID, len(ledger.Assignments()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func findAssignment(assigned []courtapi.Assignment, id int64) (courtapi.Assignment, bool) {
	for _, a := range assigned {
		if a.ID == id {
			return a, true
		}
	}
	return courtapi.Assignment{}, false
}
