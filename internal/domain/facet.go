package domain

// Facet is a catalog attribute that can be listed as distinct values.
type Facet string

const (
	FacetGenres    Facet = "genres"
	FacetLanguages Facet = "languages"
	FacetCountries Facet = "countries"
)

// Field returns the document path holding the facet values.
func (f Facet) Field() (string, error) {
	switch f {
	case FacetGenres:
		return "genres.name", nil
	case FacetLanguages:
		return "languages", nil
	case FacetCountries:
		return "countries", nil
	default:
		return "", ErrUnknownFacet
	}
}

func (f Facet) String() string {
	return string(f)
}
