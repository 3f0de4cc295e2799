package models

// SyncDecision is what a client should do after a staleness check.
type SyncDecision int

const (
	DecisionUpToDate SyncDecision = iota
	DecisionIncremental
	DecisionForceBundle
)

func (d SyncDecision) String() string {
	switch d {
	case DecisionUpToDate:
		return "up_to_date"
	case DecisionIncremental:
		return "incremental"
	case DecisionForceBundle:
		return "force_bundle"
	default:
		return "unknown"
	}
}

// ChangeStatus is the staleness report for a client watermark.
//
// ForceBundle is omitted from the JSON body when the client is up to date.
type ChangeStatus struct {
	UpToDate      bool  `json:"up_to_date"`
	ForceBundle   *bool `json:"force_bundle,omitempty"`
	LatestVersion int64 `json:"latest_version"`
	ChangeCount   int64 `json:"change_count"`
}

// Decision folds the report into a single client action.
func (s ChangeStatus) Decision() SyncDecision {
	switch {
	case s.UpToDate:
		return DecisionUpToDate
	case s.ForceBundle != nil && *s.ForceBundle:
		return DecisionForceBundle
	default:
		return DecisionIncremental
	}
}

// EntityCollections holds current rows of every entity table. It is embedded
// in both the bundle and the incremental payload.
type EntityCollections struct {
	SpeciesEN  []Species `json:"species_en"`
	SpeciesTET []Species `json:"species_tet"`
	Media      []Media   `json:"media"`
}

// NewEntityCollections returns collections with non-nil empty slices so
// they encode as [] rather than null.
func NewEntityCollections() EntityCollections {
	return EntityCollections{
		SpeciesEN:  []Species{},
		SpeciesTET: []Species{},
		Media:      []Media{},
	}
}

// Species returns the rows of the given locale.
func (c EntityCollections) Species(locale Locale) []Species {
	switch locale {
	case LocaleEnglish:
		return c.SpeciesEN
	case LocaleTetum:
		return c.SpeciesTET
	default:
		return nil
	}
}

// SetSpecies replaces the rows of the given locale.
func (c *EntityCollections) SetSpecies(locale Locale, rows []Species) {
	if rows == nil {
		rows = []Species{}
	}
	switch locale {
	case LocaleEnglish:
		c.SpeciesEN = rows
	case LocaleTetum:
		c.SpeciesTET = rows
	}
}

// Bundle is a complete snapshot of the catalogue taken at Version.
type Bundle struct {
	Version int64 `json:"version"`
	EntityCollections
}

// Tombstones lists entities whose latest change in a window was a delete.
// Clients remove these ids from their replica.
type Tombstones struct {
	Species []int64 `json:"species"`
	Media   []int64 `json:"media"`
}

// IncrementalChanges carries whole-row replacements for every entity touched
// after the client's watermark, plus tombstones for deleted ones.
type IncrementalChanges struct {
	LatestVersion int64 `json:"latest_version"`
	EntityCollections
	Deleted Tombstones `json:"deleted"`
}

// ChangesPage is one page of raw ledger entries.
type ChangesPage struct {
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
	Data    []ChangeEntry `json:"data"`
}
