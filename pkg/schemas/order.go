package schemas

import "github.com/configforge/configforge/pkg/models"

// Order computes the canonical section sequence: required sections first,
// then optional ones, each partition keeping its discovery order. The split
// is stable and recomputed from the documents, never persisted.
func (r *Repository) Order() (models.SectionOrder, error) {
	names, err := r.List()
	if err != nil {
		return models.SectionOrder{}, err
	}

	required := make([]string, 0, len(names))
	optional := make([]string, 0, len(names))

	for _, name := range names {
		if r.IsRequired(name) {
			required = append(required, name)
		} else {
			optional = append(optional, name)
		}
	}

	order := models.SectionOrder{
		Sections: append(append([]string{}, required...), optional...),
		Required: required,
	}

	return order, nil
}

// PreConfigured returns the sections whose value should be populated from a
// template rather than free-text generation, in discovery order.
func (r *Repository) PreConfigured() ([]string, error) {
	names, err := r.List()
	if err != nil {
		return nil, err
	}

	preConfigured := make([]string, 0, len(names))

	for _, name := range names {
		section, err := r.Section(name)
		if err != nil {
			continue
		}

		if section.Metadata.PreConfigured {
			preConfigured = append(preConfigured, name)
		}
	}

	return preConfigured, nil
}
