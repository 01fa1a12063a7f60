package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gavel/internal/courtapi"
	"gavel/internal/search"
)

func newUsersCommand(ctx *commandContext) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect the collaborator directory",
	}

	usersCmd.AddCommand(newUsersListCommand(ctx))
	usersCmd.AddCommand(newWhoamiCommand(ctx))

	return usersCmd
}

func newUsersListCommand(ctx *commandContext) *cobra.Command {
	var filter string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List backend users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			users = filterUsers(users, filter)
			if jsonOutput {
				return writeJSON(cmd, users)
			}

			rows := make([][]string, 0, len(users))
			for _, u := range users {
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

func newWhoamiCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the backend user resolved from the session email",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.sessionResolver()
			if err != nil {
				return err
			}
			user, err := resolver.Resolve(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, user)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "User id: %d\n", user.ID)
			fmt.Fprintf(out, "Name:    %s\n", user.Name)
			fmt.Fprintf(out, "Email:   %s\n", user.Email)
			fmt.Fprintf(out, "Role:    %s\n", user.Role)
			fmt.Fprintf(out, "Admin:   %s\n", yesNo(user.Role.AdminTier()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}

func filterUsers(users []courtapi.User, term string) []courtapi.User {
	needle := strings.TrimSpace(term)
	if needle == "" {
		return users
	}
	matched := make([]courtapi.User, 0, len(users))
	for _, u := range users {
		if search.ContainsFold(u.Name, needle) ||
			search.ContainsFold(u.Email, needle) ||
			search.ContainsFold(string(u.Role), needle) {
			matched = append(matched, u)
		}
	}
	return matched
}
