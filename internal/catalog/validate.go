package catalog

import "fmt"

// validate checks the loaded library for structural problems so games
// can treat catalog content as trusted: unique game IDs, unique pair
// keys per level, sort keys present, and grid item counts matching the
// declared puzzle size.
func (l *library) validate() error {
	seen := make(map[string]bool, len(l.Games))
	for _, g := range l.Games {
		if g.ID == "" {
			return fmt.Errorf("game %q: empty id", g.Title)
		}
		if seen[g.ID] {
			return fmt.Errorf("duplicate game id %q", g.ID)
		}
		seen[g.ID] = true
		if !validCategory(g.Category) {
			return fmt.Errorf("game %q: unknown category %q", g.ID, g.Category)
		}
	}

	for d, wc := range l.Words {
		if len(wc.Letters) < 12 {
			return fmt.Errorf("word content %q: need at least 12 letters, have %d", d, len(wc.Letters))
		}
		if len(wc.Dictionary) == 0 {
			return fmt.Errorf("word content %q: empty dictionary", d)
		}
	}

	for i, set := range l.Pairs {
		keys := make(map[string]bool, len(set.Pairs))
		for _, p := range set.Pairs {
			if p.Key == "" {
				return fmt.Errorf("pair level %d: empty pair key", i+1)
			}
			if keys[p.Key] {
				return fmt.Errorf("pair level %d: duplicate pair key %q", i+1, p.Key)
			}
			keys[p.Key] = true
		}
	}

	for d, set := range l.Events {
		for li, level := range set.Levels {
			for _, e := range level {
				if e.Year == 0 {
					return fmt.Errorf("event set %q level %d: event %q missing year", d, li+1, e.Label)
				}
			}
		}
	}

	for i, p := range l.Puzzles {
		if p.Size < 2 {
			return fmt.Errorf("puzzle %d: size %d too small", i+1, p.Size)
		}
		for _, items := range p.Items {
			if len(items) != p.Size {
				return fmt.Errorf("puzzle %d: item row has %d entries, want %d", i+1, len(items), p.Size)
			}
		}
	}

	return nil
}

func validCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
