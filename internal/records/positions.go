package records

import (
	"encoding/json"
	"os"
	"sort"
)

// Positions is an ordered pool of postings. Order matters: it breaks ties in every ranking.
type Positions struct {
	Items []*Position
}

func NewPositions(items []*Position) *Positions {
	return &Positions{Items: items}
}

func (p *Positions) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

func (p *Positions) FindByID(id string) *Position {
	for _, position := range p.Items {
		if position != nil && position.ID == id {
			return position
		}
	}
	return nil
}

func (p *Positions) IDs() []string {
	ids := make([]string, 0, p.Len())
	for _, position := range p.Items {
		ids = append(ids, position.ID)
	}
	return ids
}

// Keep retains the positions accepted by keep and returns the ids of the dropped ones.
// The relative order of the remaining positions is preserved.
func (p *Positions) Keep(keep func(*Position) bool) []string {
	var dropped []string
	kept := p.Items[:0]
	for _, position := range p.Items {
		if position == nil {
			continue
		}
		if keep(position) {
			kept = append(kept, position)
			continue
		}
		dropped = append(dropped, position.ID)
	}
	// Clear the tail so dropped pointers can be collected.
	for i := len(kept); i < len(p.Items); i++ {
		p.Items[i] = nil
	}
	p.Items = kept
	return dropped
}

// Exclude removes positions whose id is in targets and returns the removed ids.
func (p *Positions) Exclude(targets []string) []string {
	if len(targets) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(targets))
	for _, id := range targets {
		drop[id] = struct{}{}
	}

	return p.Keep(func(position *Position) bool {
		_, found := drop[position.ID]
		return !found
	})
}

// Clone returns a shallow copy without nil entries that can be filtered without touching
// the original pool.
func (p *Positions) Clone() *Positions {
	items := make([]*Position, 0, p.Len())
	if p != nil {
		for _, position := range p.Items {
			if position != nil {
				items = append(items, position)
			}
		}
	}
	return &Positions{Items: items}
}

// Popular returns up to limit positions ordered by applications, then views.
// Ties keep the pool order. A non-positive limit returns every position.
func (p *Positions) Popular(limit int) []*Position {
	sorted := p.Clone().Items
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Applications != sorted[j].Applications {
			return sorted[i].Applications > sorted[j].Applications
		}
		return sorted[i].Views > sorted[j].Views
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// DumpToTmpFile writes the pool as indented JSON to a temporary file and returns its name.
func (p *Positions) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "positions_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return file.Name(), nil
}
