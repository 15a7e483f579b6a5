package freelo

import "context"

// GetUsers fetches the first page of users visible to the account.
func (c *Client) GetUsers(ctx context.Context) ([]User, error) {
	var resp page[usersData]
	if err := c.getJSON(ctx, "/users", &resp); err != nil {
		return nil, err
	}

	return resp.Data.Users, nil
}

// GetStates fetches the workflow states tasks can be in.
func (c *Client) GetStates(ctx context.Context) ([]TaskState, error) {
	var resp page[statesData]
	if err := c.getJSON(ctx, "/states", &resp); err != nil {
		return nil, err
	}

	return resp.Data.States, nil
}
