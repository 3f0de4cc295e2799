package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSpeciesID     = errors.New("invalid species ID")
	ErrEmptyScientificName  = errors.New("scientific name is required")
	ErrInvalidLeafType      = errors.New("leaf type is not in the controlled vocabulary")
	ErrInvalidFruitType     = errors.New("fruit type is not in the controlled vocabulary")
	ErrNoLocaleProvided     = errors.New("at least one locale row must be provided")
	ErrLocaleIDMismatch     = errors.New("locale row species ID does not match the path")
	ErrInvalidMediaID       = errors.New("invalid media ID")
	ErrInvalidDownloadLink  = errors.New("invalid download link")
	ErrInvalidStreamingLink = errors.New("invalid streaming link")
)
