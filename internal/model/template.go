package model

import (
	"time"

	"github.com/google/uuid"
)

// BoardTemplate represents a reusable board skeleton that captures zones
// and layout settings but not items or their positions.
type BoardTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Containers  []Container  `json:"containers"`
	Config      LayoutConfig `json:"config"`
}

// NewBoardTemplate creates a template from the given board data. It copies
// the zones and settings but intentionally excludes items.
func NewBoardTemplate(name, description string, containers []Container, config LayoutConfig) BoardTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	copied := make([]Container, len(containers))
	copy(copied, containers)
	return BoardTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Containers:  copied,
		Config:      config,
	}
}

// ToBoard creates a new Board from this template. Zones get fresh IDs so
// the board is independent of the template.
func (t BoardTemplate) ToBoard(boardName string) Board {
	containers := make([]Container, len(t.Containers))
	for i, c := range t.Containers {
		containers[i] = NewContainer(c.Label, c.Position.X, c.Position.Y, c.Size.Width, c.Size.Height)
		containers[i].AcceptedCategories = append([]string(nil), c.AcceptedCategories...)
	}

	return Board{
		Name:       boardName,
		Items:      []Item{},
		Containers: containers,
		Config:     t.Config,
	}
}

// TemplateStore holds a collection of board templates.
type TemplateStore struct {
	Templates []BoardTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []BoardTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t BoardTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns the template with the given ID, or nil if absent.
func (ts *TemplateStore) FindByID(id string) *BoardTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}
