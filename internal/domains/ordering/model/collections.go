package model

import "portfolio-backend/pkg/cache"

// Collection describes one reorderable table: where positions live and
// whether ordering is scoped to a group column.
type Collection struct {
	Table    string
	GroupCol string // empty when the whole table is one list
	CacheTag string
}

// Collections is the registry of everything the dashboard can reorder.
// Adding a reorderable list means adding a row here, nothing else.
var Collections = map[string]Collection{
	"projects":    {Table: "projects", CacheTag: cache.TagProjects},
	"socials":     {Table: "social_links", CacheTag: cache.TagSocials},
	"skills":      {Table: "skills", GroupCol: "category", CacheTag: cache.TagSkills},
	"experiences": {Table: "experiences", GroupCol: "type", CacheTag: cache.TagExperiences},
}
