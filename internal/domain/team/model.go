package team

import "fmt"

// Team is one of the 48 tournament entrants. The ID is either a three-letter
// federation code or a placeholder code for a playoff slot that has not been
// decided yet (for example "UEFA_A").
type Team struct {
	ID    string
	Name  string
	Flag  string
	ISO2  string
	Group string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.Group) != 1 || t.Group[0] < 'A' || t.Group[0] > 'L' {
		return fmt.Errorf("team group must be a letter A..L, got %q", t.Group)
	}

	return nil
}

// Groups returns the twelve group letters in tournament order.
func Groups() []string {
	return []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
}

// Index is a read-only lookup over a fixed team list.
type Index struct {
	byID    map[string]Team
	byGroup map[string][]Team
	all     []Team
}

func NewIndex(teams []Team) Index {
	idx := Index{
		byID:    make(map[string]Team, len(teams)),
		byGroup: make(map[string][]Team),
		all:     append([]Team(nil), teams...),
	}
	for _, t := range idx.all {
		idx.byID[t.ID] = t
		idx.byGroup[t.Group] = append(idx.byGroup[t.Group], t)
	}

	return idx
}

func (idx Index) ByID(id string) (Team, bool) {
	t, ok := idx.byID[id]
	return t, ok
}

// ByGroup returns the group's teams in seed order. The order matters: group
// match IDs encode positions in this slice.
func (idx Index) ByGroup(group string) []Team {
	return idx.byGroup[group]
}

func (idx Index) All() []Team {
	return idx.all
}

func (idx Index) Len() int {
	return len(idx.all)
}
