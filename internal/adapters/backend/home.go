package backend

import (
	"context"
	"net/http"

	"clubadmin/internal/domain/announcement"
	"clubadmin/internal/domain/clubmember"
	"clubadmin/internal/domain/sponsor"
)

// ListAnnouncements returns every announcement.
func (c *Client) ListAnnouncements(ctx context.Context) ([]announcement.Announcement, error) {
	return list[announcement.Announcement](ctx, c, "/api/announcement", "announcements")
}

// GetAnnouncement returns one announcement.
func (c *Client) GetAnnouncement(ctx context.Context, id string) (announcement.Announcement, error) {
	return get[announcement.Announcement](ctx, c, "/api/announcement/"+escape(id), "announcement")
}

// CreateAnnouncement posts a new announcement.
func (c *Client) CreateAnnouncement(ctx context.Context, a announcement.Announcement) (string, error) {
	a.ID = ""
	return send(ctx, c, http.MethodPost, "/api/announcement", a)
}

// UpdateAnnouncement replaces the announcement with the given id.
func (c *Client) UpdateAnnouncement(ctx context.Context, id string, a announcement.Announcement) (string, error) {
	a.ID = ""
	return send(ctx, c, http.MethodPut, "/api/announcement/"+escape(id), a)
}

// DeleteAnnouncement removes one announcement.
func (c *Client) DeleteAnnouncement(ctx context.Context, id string) (string, error) {
	return send(ctx, c, http.MethodDelete, "/api/announcement/"+escape(id), nil)
}

// ListSponsors returns every sponsor.
func (c *Client) ListSponsors(ctx context.Context) ([]sponsor.Sponsor, error) {
	return list[sponsor.Sponsor](ctx, c, "/api/sponsors", "sponsors")
}

// GetSponsor returns one sponsor.
func (c *Client) GetSponsor(ctx context.Context, id string) (sponsor.Sponsor, error) {
	return get[sponsor.Sponsor](ctx, c, "/api/sponsors/"+escape(id), "sponsor")
}

// CreateSponsor posts a new sponsor.
func (c *Client) CreateSponsor(ctx context.Context, s sponsor.Sponsor) (string, error) {
	s.ID = ""
	return send(ctx, c, http.MethodPost, "/api/sponsors", s)
}

// UpdateSponsor replaces the sponsor with the given id.
func (c *Client) UpdateSponsor(ctx context.Context, id string, s sponsor.Sponsor) (string, error) {
	s.ID = ""
	return send(ctx, c, http.MethodPut, "/api/sponsors/"+escape(id), s)
}

// DeleteSponsor removes one sponsor.
func (c *Client) DeleteSponsor(ctx context.Context, id string) (string, error) {
	return send(ctx, c, http.MethodDelete, "/api/sponsors/"+escape(id), nil)
}

// ListClubMembers returns every registered club member.
func (c *Client) ListClubMembers(ctx context.Context) ([]clubmember.ClubMember, error) {
	return list[clubmember.ClubMember](ctx, c, "/api/club-member", "members")
}

// FindClubMember looks a club member up by email.
func (c *Client) FindClubMember(ctx context.Context, email string) (clubmember.ClubMember, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/club-member/get-member", map[string]string{"email": email})
	if err != nil {
		return clubmember.ClubMember{}, err
	}
	return DecodeOne[clubmember.ClubMember](body, "member")
}

// AddClubMember registers a club member.
func (c *Client) AddClubMember(ctx context.Context, m clubmember.ClubMember) (string, error) {
	return send(ctx, c, http.MethodPost, "/api/club-member", m)
}

// DeleteClubMember removes the club member with the given email.
func (c *Client) DeleteClubMember(ctx context.Context, email string) (string, error) {
	return send(ctx, c, http.MethodDelete, "/api/club-member", map[string]string{"email": email})
}

// SendMailToAll mails every club member.
func (c *Client) SendMailToAll(ctx context.Context, subject, text string) (string, error) {
	return send(ctx, c, http.MethodPost, "/api/club-member/send-mail-to-all", map[string]string{
		"subject": subject,
		"text":    text,
	})
}
