package settings

import (
	"slices"

	"github.com/propflow/leadboard/models"
)

// SearchCriteria returns the whole search_criteria sub-tree, including any
// keys the application does not know about, or an empty document when the
// sub-tree is absent.
func (s *Store) SearchCriteria() (Document, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	criteria := doc.objectAt(keySearchCriteria)
	if criteria == nil {
		return Document{}, nil
	}
	return Document(criteria), nil
}

// UpdateSearchCriteria overlays fields onto search_criteria one key at a
// time, overwriting existing keys of the same name. The schema is open:
// keys the application does not recognize are stored as-is. The document
// is always persisted.
func (s *Store) UpdateSearchCriteria(fields map[string]Value) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}

	criteria := doc.ensureObject(keySearchCriteria)
	for key, value := range fields {
		criteria[key] = value.raw()
	}
	return s.Save(doc)
}

// PriceRange returns search_criteria.price_range, falling back to
// [models.DefaultPriceRange] for the whole range or for either missing
// bound.
func (s *Store) PriceRange() (models.PriceRange, error) {
	doc, err := s.Load()
	if err != nil {
		return models.PriceRange{}, err
	}

	def := models.DefaultPriceRange()
	pr, ok := doc.objectAt(keySearchCriteria)[keyPriceRange].(map[string]any)
	if !ok {
		return def, nil
	}

	return models.PriceRange{
		Min: intAt(pr, "min", def.Min),
		Max: intAt(pr, "max", def.Max),
	}, nil
}

// UpdatePriceRange replaces search_criteria.price_range and persists the
// document. min <= max is not validated here; the dashboard shows the
// range as entered and the operator fixes it there.
func (s *Store) UpdatePriceRange(min, max int) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}

	criteria := doc.ensureObject(keySearchCriteria)
	criteria[keyPriceRange] = map[string]any{"min": min, "max": max}
	return s.Save(doc)
}

// PropertyTypes returns search_criteria.property_types, or an empty slice
// when absent.
func (s *Store) PropertyTypes() ([]string, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return stringsAt(doc.objectAt(keySearchCriteria), keyPropertyTypes), nil
}

// UpdatePropertyTypes replaces the whole property_types sequence — there
// are no merge semantics — and persists the document.
func (s *Store) UpdatePropertyTypes(types []string) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}

	if types == nil {
		types = []string{}
	}
	criteria := doc.ensureObject(keySearchCriteria)
	criteria[keyPropertyTypes] = slices.Clone(types)
	return s.Save(doc)
}

// IntegrationConfig returns the gohighlevel sub-tree, or an empty document
// when absent. Absence is not an error: it simply means the CRM
// integration has never been configured.
func (s *Store) IntegrationConfig() (Document, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	integration := doc.objectAt(keyIntegration)
	if integration == nil {
		return Document{}, nil
	}
	return Document(integration), nil
}
