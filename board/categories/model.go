package categories

// Category is an exam section (Quant, Verbal, DILR...).
type Category struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Details string `json:"details,omitempty"`
	Enabled bool   `json:"enabled"`
}

type Categories []Category

// Topic belongs to a category through SectionId.
type Topic struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Details   string `json:"details,omitempty"`
	SectionId string `json:"sectionId"`
	Enabled   bool   `json:"enabled"`
}

type Topics []Topic

// Source is where a question was taken from (mock series, past paper).
type Source struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type Sources []Source

// Enabled filters out entries hidden from browsing.
func (list Categories) Enabled() Categories {
	next := make(Categories, 0, len(list))
	for _, c := range list {
		if c.Enabled {
			next = append(next, c)
		}
	}
	return next
}

func (list Topics) Enabled() Topics {
	next := make(Topics, 0, len(list))
	for _, t := range list {
		if t.Enabled {
			next = append(next, t)
		}
	}
	return next
}

func (list Sources) Enabled() Sources {
	next := make(Sources, 0, len(list))
	for _, s := range list {
		if s.Enabled {
			next = append(next, s)
		}
	}
	return next
}
