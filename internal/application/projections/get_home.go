package projections

import (
	"context"
	"sync"

	"clubadmin/internal/domain/announcement"
	"clubadmin/internal/domain/sponsor"
)

// HomeBackend defines the backend calls needed by the home projection.
type HomeBackend interface {
	ListAnnouncements(ctx context.Context) ([]announcement.Announcement, error)
	ListSponsors(ctx context.Context) ([]sponsor.Sponsor, error)
}

// GetHomeDeps holds dependencies for the home projection.
type GetHomeDeps struct {
	Backend HomeBackend
}

// GetHomeResult carries both home-screen lists.
type GetHomeResult struct {
	Announcements Listing[announcement.Announcement]
	Sponsors      Listing[sponsor.Sponsor]
}

// QueryGetHome fetches announcements and sponsors in parallel.
// POST: Each slot is filled independently; one failure never blanks the other
func QueryGetHome(ctx context.Context, deps GetHomeDeps) GetHomeResult {
	var res GetHomeResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		res.Announcements = QueryList(ctx, "announcement", deps.Backend.ListAnnouncements)
	}()
	go func() {
		defer wg.Done()
		res.Sponsors = QueryList(ctx, "sponsor", deps.Backend.ListSponsors)
	}()
	wg.Wait()
	return res
}
