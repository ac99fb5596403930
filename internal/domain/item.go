// Package domain defines the resource records stored by the services
// and their construction/validation rules.
package domain

import "github.com/google/uuid"

// Item is a generic resource managed by the API service. The identifier is
// assigned exactly once at creation and never changes. Description is
// optional and serializes as an explicit null when absent.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// NewItem creates an Item with a server-generated identifier.
// Returns ErrNameRequired if name is empty.
func NewItem(name string, description *string) (*Item, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	return &Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}, nil
}
