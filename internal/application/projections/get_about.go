package projections

import (
	"context"
	"sync"

	"clubadmin/internal/domain/achievement"
	"clubadmin/internal/domain/developer"
)

// AboutBackend defines the backend calls needed by the about projection.
type AboutBackend interface {
	ListAchievements(ctx context.Context) ([]achievement.Achievement, error)
	ListDevelopers(ctx context.Context) ([]developer.Developer, error)
}

// GetAboutDeps holds dependencies for the about projection.
type GetAboutDeps struct {
	Backend AboutBackend
}

// GetAboutResult carries the achievements and the developer team.
type GetAboutResult struct {
	Achievements Listing[achievement.Achievement]
	Developers   Listing[developer.Developer]
}

// QueryGetAbout fetches achievements and developers in parallel.
// POST: Each slot is filled independently
func QueryGetAbout(ctx context.Context, deps GetAboutDeps) GetAboutResult {
	var res GetAboutResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		res.Achievements = QueryList(ctx, "achievement", deps.Backend.ListAchievements)
	}()
	go func() {
		defer wg.Done()
		res.Developers = QueryList(ctx, "developer", deps.Backend.ListDevelopers)
	}()
	wg.Wait()
	return res
}
