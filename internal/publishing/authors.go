package publishing

import (
	"context"
	"regexp"
	"strings"
	"sync"
)

// UnknownAuthor substitutes for a byline whose user record is missing; a
// broken reference must not fail the page render.
const UnknownAuthor = "Unknown Author"

var roleSuffixPattern = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// NormalizeBylines splits legacy string-encoded bylines into individual
// entries. Old records sometimes carry "Name1 - Name2" as one value, or a
// trailing "(role)" suffix on a name. This is a one-time migration concern
// for imported data; steady-state records store a list of user ids.
func NormalizeBylines(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, part := range strings.Split(entry, " - ") {
			part = roleSuffixPattern.ReplaceAllString(strings.TrimSpace(part), "")
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// AuthorNames resolves author ids to display names, one lookup per id,
// issued concurrently. A failed or missing lookup yields UnknownAuthor in
// that position instead of an error.
func (s *Service) AuthorNames(ctx context.Context, ids []string) []string {
	if len(ids) == 0 {
		return []string{UnknownAuthor}
	}

	names := make([]string, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			user, err := s.users.FindByID(ctx, id)
			if err != nil {
				s.log.Debug().Err(err).Str("user_id", id).Msg("author lookup failed")
				names[i] = UnknownAuthor
				return
			}
			names[i] = user.Name
		}(i, id)
	}
	wg.Wait()
	return names
}
