package courtapi

import (
	"context"
	"fmt"
	"strconv"
)

// CaseComments fetches the comment thread for one case.
func (c *Client) CaseComments(ctx context.Context, caseID int64) ([]Comment, error) {
	var comments []Comment
	if err := c.getJSON(ctx, "list comments", "transcript_comments/"+strconv.FormatInt(caseID, 10), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment posts a new comment authored by the resolved backend user.
func (c *Client) AddComment(ctx context.Context, caseID, commenterID int64, commentType CommentType, text string) error {
	if !commentType.Valid() {
		return fmt.Errorf("%w: add comment: unknown comment type %q", ErrValidation, commentType)
	}
	body := map[string]any{
		"case_id":      caseID,
		"commenter":    commenterID,
		"comment_type": commentType,
		"comment_text": text,
	}
	return c.sendJSON(ctx, "add comment", "POST", "add_transcription_comment", body, nil)
}

// UpdateComment replaces a comment's type and text.
func (c *Client) UpdateComment(ctx context.Context, commentID int64, commentType CommentType, text string) error {
	if !commentType.Valid() {
		return fmt.Errorf("%w: update comment: unknown comment type %q", ErrValidation, commentType)
	}
	body := map[string]any{
		"comment_type": commentType,
		"comment_text": text,
	}
	return c.sendJSON(ctx, "update comment", "PUT", "transcript_comments/"+strconv.FormatInt(commentID, 10), body, nil)
}

// DeleteComment removes a comment by its identifier.
func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	if commentID <= 0 {
		return fmt.Errorf("%w: delete comment: id must be positive", ErrValidation)
	}
	return c.deleteResource(ctx, "delete comment", "transcript_comments/"+strconv.FormatInt(commentID, 10))
}
