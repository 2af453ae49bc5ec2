package catalog

import (
	"cmp"
	"slices"

	"github.com/jbeskow/signflash/core"
)

// CategoryCount summarizes one catalog category.
type CategoryCount struct {
	Slug  string
	Label string
	Signs int // rows with a usable video
}

// Categories enumerates the distinct categories of the catalog, sorted
// by slug. Rows without a slug are skipped. The label comes from the
// first row of the category that carries one.
func Categories(signs []core.Sign) []CategoryCount {
	bySlug := make(map[string]*CategoryCount)
	for i := range signs {
		s := &signs[i]
		if s.Slug == "" {
			continue
		}
		c, ok := bySlug[s.Slug]
		if !ok {
			c = &CategoryCount{Slug: s.Slug, Label: s.Category}
			bySlug[s.Slug] = c
		}
		if c.Label == "" && s.Category != "" {
			c.Label = s.Category
		}
		if s.HasVideo() {
			c.Signs++
		}
	}

	out := make([]CategoryCount, 0, len(bySlug))
	for _, c := range bySlug {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b CategoryCount) int {
		return cmp.Compare(a.Slug, b.Slug)
	})
	return out
}
