package backend

import (
	"context"
	"net/http"

	"clubadmin/internal/domain/achievement"
	"clubadmin/internal/domain/contact"
	"clubadmin/internal/domain/developer"
	"clubadmin/internal/domain/member"
)

// ListMembers returns every committee member.
func (c *Client) ListMembers(ctx context.Context) ([]member.Member, error) {
	return list[member.Member](ctx, c, "/api/members/getmember", "members")
}

// GetMember returns one committee member.
func (c *Client) GetMember(ctx context.Context, id string) (member.Member, error) {
	return get[member.Member](ctx, c, "/api/members/getmember/"+escape(id), "member")
}

// AddMember posts a new committee member.
func (c *Client) AddMember(ctx context.Context, m member.Member) (string, error) {
	m.ID = ""
	return send(ctx, c, http.MethodPost, "/api/members/addmember", m)
}

// UpdateMember replaces one committee member.
func (c *Client) UpdateMember(ctx context.Context, id string, m member.Member) (string, error) {
	m.ID = ""
	return send(ctx, c, http.MethodPut, "/api/members/updatemember/"+escape(id), m)
}

// DeleteMember removes one committee member.
func (c *Client) DeleteMember(ctx context.Context, id string) (string, error) {
	return send(ctx, c, http.MethodDelete, "/api/members/deletemember/"+escape(id), nil)
}

// ListMessages returns every contact message.
func (c *Client) ListMessages(ctx context.Context) ([]contact.Message, error) {
	return list[contact.Message](ctx, c, "/api/contact/get_messages", "messages")
}

// GetMessage returns one contact message.
func (c *Client) GetMessage(ctx context.Context, id string) (contact.Message, error) {
	return get[contact.Message](ctx, c, "/api/contact/get_messages/"+escape(id), "message")
}

// ReplyToMessage asks the backend to mail a reply.
func (c *Client) ReplyToMessage(ctx context.Context, r contact.Reply) (string, error) {
	return send(ctx, c, http.MethodPost, "/api/contact/reply", r)
}

// DeleteMessage removes one contact message.
func (c *Client) DeleteMessage(ctx context.Context, id string) (string, error) {
	return send(ctx, c, http.MethodDelete, "/api/contact/delete_message/"+escape(id), nil)
}

// ListAchievements returns every achievement.
func (c *Client) ListAchievements(ctx context.Context) ([]achievement.Achievement, error) {
	return list[achievement.Achievement](ctx, c, "/api/achievements", "achievements")
}

// GetAchievement returns one achievement.
func (c *Client) GetAchievement(ctx context.Context, id string) (achievement.Achievement, error) {
	return get[achievement.Achievement](ctx, c, "/api/achievements/"+escape(id), "achievement")
}

// CreateAchievement posts a new achievement.
func (c *Client) CreateAchievement(ctx context.Context, a achievement.Achievement) (string, error) {
	a.ID = ""
	return send(ctx, c, http.MethodPost, "/api/achievements", a)
}

// UpdateAchievement replaces one achievement.
func (c *Client) UpdateAchievement(ctx context.Context, id string, a achievement.Achievement) (string, error) {
	a.ID = ""
	return send(ctx, c, http.MethodPut, "/api/achievements/"+escape(id), a)
}

// DeleteAchievement removes one achievement.
func (c *Client) DeleteAchievement(ctx context.Context, id string) (string, error) {
	return send(ctx, c, http.MethodDelete, "/api/achievements/"+escape(id), nil)
}

// ListDevelopers returns the developer team.
func (c *Client) ListDevelopers(ctx context.Context) ([]developer.Developer, error) {
	return list[developer.Developer](ctx, c, "/api/dev_team", "devTeam")
}

// GetDeveloper returns one developer.
func (c *Client) GetDeveloper(ctx context.Context, id string) (developer.Developer, error) {
	return get[developer.Developer](ctx, c, "/api/dev_team/"+escape(id), "developer")
}

// CreateDeveloper posts a new developer.
func (c *Client) CreateDeveloper(ctx context.Context, d developer.Developer) (string, error) {
	d.ID = ""
	return send(ctx, c, http.MethodPost, "/api/dev_team", d)
}

// UpdateDeveloper replaces one developer.
func (c *Client) UpdateDeveloper(ctx context.Context, id string, d developer.Developer) (string, error) {
	d.ID = ""
	return send(ctx, c, http.MethodPut, "/api/dev_team/"+escape(id), d)
}

// DeleteDeveloper removes one developer.
func (c *Client) DeleteDeveloper(ctx context.Context, id string) (string, error) {
	return send(ctx, c, http.MethodDelete, "/api/dev_team/"+escape(id), nil)
}
