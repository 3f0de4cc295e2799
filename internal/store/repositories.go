package store

// Repositories groups the repositories bound to one [Querier]: either the
// connection pool or a single transaction handed out by [Transactor].
type Repositories struct {
	Changelog ChangelogRepository
	Species   SpeciesRepository
	Media     MediaRepository
}

func newRepositories(q Querier) *Repositories {
	return &Repositories{
		Changelog: NewChangelogRepository(q),
		Species:   NewSpeciesRepository(q),
		Media:     NewMediaRepository(q),
	}
}
