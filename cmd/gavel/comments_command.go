package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gavel/internal/comments"
	"gavel/internal/courtapi"
)

func newCommentsCommand(ctx *commandContext) *cobra.Command {
	commentsCmd := &cobra.Command{
		Use:   "comments",
		Short: "Read and write transcript comments on a case",
	}

	commentsCmd.AddCommand(newCommentsListCommand(ctx))
	commentsCmd.AddCommand(newCommentsAddCommand(ctx))
	commentsCmd.AddCommand(newCommentsEditCommand(ctx))
	commentsCmd.AddCommand(newCommentsDeleteCommand(ctx))

	return commentsCmd
}

func caseThread(ctx *commandContext, cmd *cobra.Command, caseID int64) (*comments.Thread, error) {
	client, err := ctx.apiClient()
	if err != nil {
		return nil, err
	}
	resolver, err := ctx.sessionResolver()
	if err != nil {
		return nil, err
	}
	thread := comments.NewThread(client, resolver, caseID, ctx.ensureLogger())
	if err := thread.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return thread, nil
}

func newCommentsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list <case-id>",
		Short: "Show a case's comment thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			thread, err := caseThread(ctx, cmd, caseID)
			if err != nil {
				return err
			}
			list := thread.Comments()
			if jsonOutput {
				return writeJSON(cmd, list)
			}

			rows := make([][]string, 0, len(list))
			for _, c := range list {
				rows = append(rows, []string{
					strconv.FormatInt(c.ID, 10),
					c.CommenterName,
					string(c.CommentType),
					c.CommentText,
					c.CreatedAt,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Commenter", "Type", "Comment", "Created"},
				rows,
				[]columnAlignment{alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newCommentsAddCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "add <case-id> <text>",
		Short: "Add a comment to a case as the session user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			thread, err := caseThread(ctx, cmd, caseID)
			if err != nil {
				return err
			}
			if err := thread.OpenCompose(); err != nil {
				return err
			}
			if err := thread.Submit(cmd.Context(), courtapi.CommentType(typeFlag), args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s comment to case %d (%d comments)\n",
				typeFlag, caseID, len(thread.Comments()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", string(courtapi.CommentGeneral),
		"Comment type: general, error, note, question, or suggestion")
	return cmd
}

func newCommentsEditCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "edit <case-id> <comment-id> <text>",
		Short: "Replace a comment's type and text",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			commentID, err := parseID(args[1], "comment id")
			if err != nil {
				return err
			}
			thread, err := caseThread(ctx, cmd, caseID)
			if err != nil {
				return err
			}
			if err := thread.Edit(cmd.Context(), commentID, courtapi.CommentType(typeFlag), args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated comment %d on case %d\n", commentID, caseID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", string(courtapi.CommentGeneral),
		"Comment type: general, error, note, question, or suggestion")
	return cmd
}

func newCommentsDeleteCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <case-id> <comment-id>",
		Short: "Delete a comment from a case",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := parseID(args[0], "case id")
			if err != nil {
				return err
			}
			commentID, err := parseID(args[1], "comment id")
			if err != nil {
				return err
			}
			thread, err := caseThread(ctx, cmd, caseID)
			if err != nil {
				return err
			}
			if !yes {
				confirmed, err := confirmOnTTY(cmd, fmt.Sprintf("Delete comment %d from case %d?", commentID, caseID))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}
			if err := thread.Delete(cmd.Context(), commentID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted comment %d from case %d\n", commentID, caseID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
