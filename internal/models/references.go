package models

// ReferencesModel carries the full records for entities referenced by id
// elsewhere in a response.
type ReferencesModel struct {
	Locations []Location `json:"locations"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Locations: []Location{},
	}
}

// NewLocationReferences creates a References model holding the given locations
func NewLocationReferences(locations []Location) ReferencesModel {
	if locations == nil {
		locations = []Location{}
	}
	return ReferencesModel{Locations: locations}
}
