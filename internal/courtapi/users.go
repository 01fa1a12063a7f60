package courtapi

import "context"

// ListUsers fetches the full collaborator directory.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.getJSON(ctx, "list users", "users", &users); err != nil {
		return nil, err
	}
	return users, nil
}
