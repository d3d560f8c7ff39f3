package settings

import "slices"

// SearchLocations returns search_criteria.target_locations in insertion
// order, or an empty slice when the key is absent.
func (s *Store) SearchLocations() ([]string, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return stringsAt(doc.objectAt(keySearchCriteria), keyTargetLocations), nil
}

// AddLocation appends name to target_locations unless an exactly equal
// entry is already present. The document is persisted only when a change
// was made; the returned bool reports whether that happened.
func (s *Store) AddLocation(name string) (bool, error) {
	doc, err := s.Load()
	if err != nil {
		return false, err
	}

	criteria := doc.ensureObject(keySearchCriteria)
	locations := stringsAt(criteria, keyTargetLocations)
	if slices.Contains(locations, name) {
		return false, nil
	}

	criteria[keyTargetLocations] = append(locations, name)
	if err := s.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveLocation removes the first entry exactly matching name. The
// document is persisted and true returned only when an entry was found;
// otherwise the file is left untouched.
func (s *Store) RemoveLocation(name string) (bool, error) {
	doc, err := s.Load()
	if err != nil {
		return false, err
	}

	criteria := doc.ensureObject(keySearchCriteria)
	locations := stringsAt(criteria, keyTargetLocations)
	idx := slices.Index(locations, name)
	if idx < 0 {
		return false, nil
	}

	criteria[keyTargetLocations] = slices.Delete(locations, idx, idx+1)
	if err := s.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}
