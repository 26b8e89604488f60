package domain

// CustomerInfo holds the contact fields collected before checkout. All six
// fields must be non-empty for an order to be submitted; format validation of
// email and phone is intentionally not performed.
type CustomerInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// customerFields lists field names in the order the form shows them.
var customerFields = []string{"name", "address", "state", "zip", "email", "phone"}

// SetField assigns the named field. Unknown names return ErrNotFound.
func (c *CustomerInfo) SetField(name, value string) error {
	switch name {
	case "name":
		c.Name = value
	case "address":
		c.Address = value
	case "state":
		c.State = value
	case "zip":
		c.Zip = value
	case "email":
		c.Email = value
	case "phone":
		c.Phone = value
	default:
		return ErrNotFound
	}
	return nil
}

// MissingFields returns the names of all blank required fields.
func (c CustomerInfo) MissingFields() []string {
	values := map[string]string{
		"name":    c.Name,
		"address": c.Address,
		"state":   c.State,
		"zip":     c.Zip,
		"email":   c.Email,
		"phone":   c.Phone,
	}
	var missing []string
	for _, f := range customerFields {
		if values[f] == "" {
			missing = append(missing, f)
		}
	}
	return missing
}
