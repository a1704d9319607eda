package menu

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Catalog is the restaurant menu, grouped by section. It is loaded once at
// startup and read-only afterwards.
type Catalog struct {
	sections []string
	items    map[string][]string
}

// Load reads the menu from a CSV file with a "Section,Item" header.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("menu: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads menu rows from r. Section order follows first appearance.
func Parse(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("menu: read header: %w", err)
	}
	sectionCol, itemCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "section", "category":
			sectionCol = i
		case "item":
			itemCol = i
		}
	}
	if sectionCol < 0 || itemCol < 0 {
		return nil, fmt.Errorf("menu: header must contain Section and Item columns, got %v", header)
	}

	c := &Catalog{items: make(map[string][]string)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("menu: read row: %w", err)
		}
		section := strings.TrimSpace(record[sectionCol])
		item := strings.TrimSpace(record[itemCol])
		if section == "" || item == "" {
			continue
		}
		if _, seen := c.items[section]; !seen {
			c.sections = append(c.sections, section)
		}
		c.items[section] = append(c.items[section], item)
	}
	if len(c.sections) == 0 {
		return nil, fmt.Errorf("menu: no rows")
	}
	return c, nil
}

// Sections returns section names in menu order.
func (c *Catalog) Sections() []string {
	out := make([]string, len(c.sections))
	copy(out, c.sections)
	return out
}

// Items returns the items of one section, in menu order.
func (c *Catalog) Items(section string) []string {
	items := c.items[section]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// AllItems returns every item across sections.
func (c *Catalog) AllItems() []string {
	var out []string
	for _, section := range c.sections {
		out = append(out, c.items[section]...)
	}
	return out
}

// Contains reports whether the item is on the menu. Matching is
// case-insensitive so the model does not have to reproduce exact casing.
func (c *Catalog) Contains(item string) bool {
	needle := strings.ToLower(strings.TrimSpace(item))
	for _, candidate := range c.AllItems() {
		if strings.ToLower(candidate) == needle {
			return true
		}
	}
	return false
}

// ClosestMatches returns up to n menu items most similar to the given name,
// for "did you mean" suggestions when an order names something off-menu.
// Candidates below a 0.6 similarity ratio are dropped.
func (c *Catalog) ClosestMatches(item string, n int) []string {
	type scored struct {
		item  string
		ratio float64
	}
	needle := strings.ToLower(strings.TrimSpace(item))
	var candidates []scored
	for _, candidate := range c.AllItems() {
		r := similarity(needle, strings.ToLower(candidate))
		if r >= 0.6 {
			candidates = append(candidates, scored{item: candidate, ratio: r})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ratio > candidates[j].ratio
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]string, 0, len(candidates))
	for _, s := range candidates {
		out = append(out, s.item)
	}
	return out
}

// similarity is a normalized edit-distance ratio in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	dist := levenshtein(a, b)
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	return 1 - float64(dist)/float64(longest)
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
