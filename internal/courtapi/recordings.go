package courtapi

import "context"

// ListRecordings fetches every recording known to the backend.
func (c *Client) ListRecordings(ctx context.Context) ([]Recording, error) {
	var recordings []Recording
	if err := c.getJSON(ctx, "list recordings", "recordings", &recordings); err != nil {
		return nil, err
	}
	return recordings, nil
}

// ListCourts fetches the court directory.
func (c *Client) ListCourts(ctx context.Context) ([]Court, error) {
	var courts []Court
	if err := c.getJSON(ctx, "list courts", "courts", &courts); err != nil {
		return nil, err
	}
	return courts, nil
}

// ListCourtrooms fetches the courtroom directory.
func (c *Client) ListCourtrooms(ctx context.Context) ([]Courtroom, error) {
	var courtrooms []Courtroom
	if err := c.getJSON(ctx, "list courtrooms", "courtrooms", &courtrooms); err != nil {
		return nil, err
	}
	return courtrooms, nil
}
