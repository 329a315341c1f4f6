package orchestrators

import (
	"context"
	"errors"
	"io"
	"sync"

	emailAdapter "clubadmin/internal/adapters/email"
	"clubadmin/internal/domain/activity"
	"clubadmin/internal/domain/admin"
	"clubadmin/internal/domain/announcement"
	"clubadmin/internal/domain/audit"
	"clubadmin/internal/domain/blog"
	"clubadmin/internal/domain/clubmember"
	"clubadmin/internal/domain/contact"
	"clubadmin/internal/domain/sponsor"
)

var errBackendDown = errors.New("backend down")

// fakeBackend records every call it receives. When fail is set every call errors.
type fakeBackend struct {
	calls []string
	fail  bool

	announcement announcement.Announcement
	sponsor      sponsor.Sponsor
	blog         blog.Blog
	likes        int
	activity     activity.Activity
	clubMember   clubmember.ClubMember
	mailSubject  string
	mailText     string
	reply        contact.Reply
	messages     map[string]contact.Message
	token        string
}

func (f *fakeBackend) record(call string) (string, error) {
	f.calls = append(f.calls, call)
	if f.fail {
		return "", errBackendDown
	}
	return "ok: " + call, nil
}

func (f *fakeBackend) CreateAnnouncement(_ context.Context, a announcement.Announcement) (string, error) {
	f.announcement = a
	return f.record("CreateAnnouncement")
}

func (f *fakeBackend) UpdateAnnouncement(_ context.Context, id string, a announcement.Announcement) (string, error) {
	f.announcement = a
	return f.record("UpdateAnnouncement " + id)
}

func (f *fakeBackend) DeleteAnnouncement(_ context.Context, id string) (string, error) {
	return f.record("DeleteAnnouncement " + id)
}

func (f *fakeBackend) CreateSponsor(_ context.Context, s sponsor.Sponsor) (string, error) {
	f.sponsor = s
	return f.record("CreateSponsor")
}

func (f *fakeBackend) UpdateSponsor(_ context.Context, id string, s sponsor.Sponsor) (string, error) {
	f.sponsor = s
	return f.record("UpdateSponsor " + id)
}

func (f *fakeBackend) DeleteSponsor(_ context.Context, id string) (string, error) {
	return f.record("DeleteSponsor " + id)
}

func (f *fakeBackend) CreateBlog(_ context.Context, b blog.Blog) (string, error) {
	f.blog = b
	return f.record("CreateBlog")
}

func (f *fakeBackend) UpdateBlog(_ context.Context, id string, b blog.Blog) (string, error) {
	f.blog = b
	return f.record("UpdateBlog " + id)
}

func (f *fakeBackend) SetBlogLikes(_ context.Context, id string, likes int) (string, error) {
	f.likes = likes
	return f.record("SetBlogLikes " + id)
}

func (f *fakeBackend) DeleteBlog(_ context.Context, id string) (string, error) {
	return f.record("DeleteBlog " + id)
}

func (f *fakeBackend) CreateActivity(_ context.Context, a activity.Activity) (string, error) {
	f.activity = a
	return f.record("CreateActivity")
}

func (f *fakeBackend) UpdateActivity(_ context.Context, id string, a activity.Activity) (string, error) {
	f.activity = a
	return f.record("UpdateActivity " + id)
}

func (f *fakeBackend) DeleteActivity(_ context.Context, id string) (string, error) {
	return f.record("DeleteActivity " + id)
}

func (f *fakeBackend) AddClubMember(_ context.Context, m clubmember.ClubMember) (string, error) {
	f.clubMember = m
	return f.record("AddClubMember")
}

func (f *fakeBackend) DeleteClubMember(_ context.Context, email string) (string, error) {
	return f.record("DeleteClubMember " + email)
}

func (f *fakeBackend) SendMailToAll(_ context.Context, subject, text string) (string, error) {
	f.mailSubject, f.mailText = subject, text
	return f.record("SendMailToAll")
}

func (f *fakeBackend) GetMessage(_ context.Context, id string) (contact.Message, error) {
	f.calls = append(f.calls, "GetMessage "+id)
	m, ok := f.messages[id]
	if !ok {
		return contact.Message{}, errors.New("not found")
	}
	return m, nil
}

func (f *fakeBackend) ReplyToMessage(_ context.Context, r contact.Reply) (string, error) {
	f.reply = r
	return f.record("ReplyToMessage")
}

func (f *fakeBackend) DeleteMessage(_ context.Context, id string) (string, error) {
	return f.record("DeleteMessage " + id)
}

func (f *fakeBackend) Login(_ context.Context, creds admin.Credentials) (string, string, error) {
	if _, err := f.record("Login " + creds.Username); err != nil {
		return "", "", err
	}
	return f.token, "Login successful", nil
}

func (f *fakeBackend) Logout(_ context.Context) error {
	_, err := f.record("Logout")
	return err
}

// fakeAudit collects saved events. When fail is set Save errors.
type fakeAudit struct {
	mu     sync.Mutex
	events []audit.Event
	fail   bool
}

func (a *fakeAudit) Save(_ context.Context, e audit.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fail {
		return errors.New("disk full")
	}
	a.events = append(a.events, e)
	return nil
}

// fakeMailer records Resend-style sends.
type fakeMailer struct {
	sent []emailAdapter.SendRequest
}

func (m *fakeMailer) Send(_ context.Context, req emailAdapter.SendRequest) (emailAdapter.SendResult, error) {
	m.sent = append(m.sent, req)
	return emailAdapter.SendResult{MessageID: "msg-1"}, nil
}

// fakeUploader keeps the uploaded bytes.
type fakeUploader struct {
	key, contentType string
	body             []byte
}

func (u *fakeUploader) Upload(_ context.Context, key, contentType string, r io.Reader) (string, error) {
	u.key, u.contentType = key, contentType
	b, err := io.ReadAll(r)
	u.body = b
	return "https://cdn.example/" + key, err
}
