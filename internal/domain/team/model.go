package team

import (
	"fmt"
	"sort"
)

// Team is a participating club keyed by its canonical name.
type Team struct {
	Name       string
	ShortCode  string
	ExternalID *int64
	ImageURL   *string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.ShortCode == "" {
		return fmt.Errorf("team short code is required: %s", t.Name)
	}
	return nil
}

// Unknown is the card reported for a team missing from the directory.
func Unknown(name string) Team {
	return Team{Name: name, ShortCode: "N/A"}
}

// Directory is an immutable lookup of team cards by canonical name.
type Directory struct {
	teams map[string]Team
}

func NewDirectory(teams []Team) (Directory, error) {
	out := make(map[string]Team, len(teams))
	for _, t := range teams {
		if err := t.Validate(); err != nil {
			return Directory{}, err
		}
		if _, exists := out[t.Name]; exists {
			return Directory{}, fmt.Errorf("duplicate team: %s", t.Name)
		}
		out[t.Name] = t
	}
	return Directory{teams: out}, nil
}

// Lookup returns the team card and whether it exists.
func (d Directory) Lookup(name string) (Team, bool) {
	t, ok := d.teams[name]
	return t, ok
}

// Card returns the team card, falling back to Unknown.
func (d Directory) Card(name string) Team {
	if t, ok := d.teams[name]; ok {
		return t
	}
	return Unknown(name)
}

// Names returns canonical names in sorted order.
func (d Directory) Names() []string {
	names := make([]string, 0, len(d.teams))
	for name := range d.teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d Directory) Len() int {
	return len(d.teams)
}

// ExternalIDLabel renders the external id, or "NA" when unknown.
func (t Team) ExternalIDLabel() string {
	if t.ExternalID == nil {
		return "NA"
	}
	return fmt.Sprintf("%d", *t.ExternalID)
}
