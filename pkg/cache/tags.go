package cache

import (
	"context"
	"fmt"
)

// Cache tags. Every cached public read is keyed under "<tag>:..." and
// every mutation that touches that collection invalidates the whole tag.
const (
	TagProfile     = "profile"
	TagSocials     = "socials"
	TagProjects    = "projects"
	TagSkills      = "skills"
	TagExperiences = "experiences"
	TagGuestbook   = "guestbook"
)

// Key builds a cache key under a tag: Key(TagProjects, "published")
// → "projects:published".
func Key(tag string, parts ...string) string {
	key := tag
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

// Invalidator is the capability services use to drop cached reads after
// a successful mutation. It is injected, not reached as ambient state,
// and callers wait for it before reporting success so the next public
// read is guaranteed fresh.
type Invalidator interface {
	Invalidate(ctx context.Context, tag string) error
}

type tagInvalidator struct {
	cache Cache
}

// NewInvalidator wraps a Cache with tag-based invalidation.
func NewInvalidator(c Cache) Invalidator {
	return &tagInvalidator{cache: c}
}

func (t *tagInvalidator) Invalidate(ctx context.Context, tag string) error {
	if err := t.cache.DeletePattern(ctx, tag+":*"); err != nil {
		return fmt.Errorf("failed to invalidate tag %q: %w", tag, err)
	}
	return nil
}
