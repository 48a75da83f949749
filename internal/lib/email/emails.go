package email

// SendWelcomeEmail sends a welcome email to a newly registered renter.
func (c *Client) SendWelcomeEmail(to, name string) error {
	// Data keys must match what the HTML template expects.
	data := map[string]string{
		"RenterName": name,
	}

	return c.SendEmail(
		to,
		"Welcome to Rental Catalog!",
		TemplateWelcome,
		data,
	)
}
