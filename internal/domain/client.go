package domain

// Client represents an end client (registered or guest) who books services
type Client struct {
	ID       int64
	Name     string
	LastName string
	Email    string
}

// HasEmail returns true if a confirmation email can be sent to the client
func (c *Client) HasEmail() bool {
	return c.Email != ""
}
