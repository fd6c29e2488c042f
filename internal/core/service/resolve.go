package service

import (
	"context"

	"github.com/bizportal/portal-api/internal/core/domain"
	"github.com/bizportal/portal-api/internal/core/ports"
)

// userIndex holds users loaded to resolve references on read.
type userIndex map[string]*domain.User

// lookupUsers fetches the distinct non-empty ids in one repository call.
func lookupUsers(ctx context.Context, repo ports.UserRepository, ids []string) (userIndex, error) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	index := make(userIndex, len(unique))
	if len(unique) == 0 {
		return index, nil
	}

	users, err := repo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		index[u.ID] = u
	}
	return index, nil
}

// summary returns the user's summary, or one carrying only the id when the
// reference dangles.
func (ix userIndex) summary(id string) domain.UserSummary {
	if u, ok := ix[id]; ok {
		return u.Summary()
	}
	return domain.UserSummary{ID: id}
}
