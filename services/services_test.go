package services

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vishaldubey2210/portfolio/database"
	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/repository"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), database.Migrations())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db.Conn
}

func newAuth(t *testing.T) (AuthService, *sql.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAuthService(
		repository.NewSQLiteUserRepo(db),
		repository.NewSQLiteSessionRepo(db),
		testSecret, time.Hour, bcrypt.MinCost,
	)
	return svc, db
}

func publicMessage(t *testing.T, err error) string {
	t.Helper()
	msg, ok := pkg.PublicMessage(err)
	require.True(t, ok, "expected a public message on %v", err)
	return msg
}

func countUsers(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n))
	return n
}

func signup(t *testing.T, svc AuthService, username, email string) *SessionToken {
	t.Helper()
	tok, err := svc.Signup(context.Background(), &models.SignupRequest{
		Username: username, Email: email, Password: "secret1", FullName: "Test User",
	})
	require.NoError(t, err)
	return tok
}

func TestSignup_ShortPassword(t *testing.T) {
	svc, db := newAuth(t)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{
		Username: "vk", Email: "vk@x.com", Password: "abc", FullName: "V K",
	})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Equal(t, "Password must be at least 6 characters", publicMessage(t, err))
	assert.Zero(t, countUsers(t, db))
}

func TestSignup_MissingField(t *testing.T) {
	svc, _ := newAuth(t)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{
		Username: "vk", Email: "  ", Password: "secret1", FullName: "V K",
	})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Equal(t, "All fields are required", publicMessage(t, err))
}

func TestSignup_MissingFieldBeforeShortPassword(t *testing.T) {
	svc, db := newAuth(t)

	_, err := svc.Signup(context.Background(), &models.SignupRequest{
		Username: "u", Email: "e@x.com", Password: "abc", FullName: "",
	})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Equal(t, "All fields are required", publicMessage(t, err))
	assert.Zero(t, countUsers(t, db))
}

func TestSignup_Conflicts(t *testing.T) {
	svc, db := newAuth(t)
	signup(t, svc, "vk", "vk@x.com")

	_, err := svc.Signup(context.Background(), &models.SignupRequest{
		Username: "vk", Email: "new@x.com", Password: "secret1", FullName: "X",
	})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
	assert.Equal(t, "Username already exists", publicMessage(t, err))

	_, err = svc.Signup(context.Background(), &models.SignupRequest{
		Username: "new", Email: "vk@x.com", Password: "secret1", FullName: "X",
	})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
	assert.Equal(t, "Email already exists", publicMessage(t, err))

	assert.Equal(t, 1, countUsers(t, db))
}

func TestSignup_IssuesWorkingSession(t *testing.T) {
	svc, _ := newAuth(t)
	tok := signup(t, svc, "vk", "vk@x.com")

	assert.NotEmpty(t, tok.Token)
	assert.Empty(t, tok.User.PasswordHash)
	assert.True(t, tok.User.IsAdmin)

	capability, err := svc.Authorize(context.Background(), tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "vk", capability.Username)
}

func TestLogin_GenericFailureMessage(t *testing.T) {
	svc, _ := newAuth(t)
	signup(t, svc, "vk", "vk@x.com")
	ctx := context.Background()

	_, errWrongPass := svc.Login(ctx, &models.LoginRequest{Username: "vk", Password: "wrong-pass"})
	_, errNoUser := svc.Login(ctx, &models.LoginRequest{Username: "ghost", Password: "wrong-pass"})

	assert.ErrorIs(t, errWrongPass, pkg.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, pkg.ErrUnauthorized)
	assert.Equal(t, publicMessage(t, errWrongPass), publicMessage(t, errNoUser))
	assert.Equal(t, "Invalid admin credentials", publicMessage(t, errNoUser))
}

func TestLogin_MissingCredentials(t *testing.T) {
	svc, _ := newAuth(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "vk"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Equal(t, "Username and password required", publicMessage(t, err))
}

func TestLogin_RejectsNonAdmin(t *testing.T) {
	svc, db := newAuth(t)
	signup(t, svc, "vk", "vk@x.com")
	_, err := db.Exec("UPDATE users SET is_admin = 0 WHERE username = 'vk'")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "vk", Password: "secret1"})
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestAuthorize_RereadsAdminFlag(t *testing.T) {
	svc, db := newAuth(t)
	ctx := context.Background()
	signup(t, svc, "vk", "vk@x.com")

	tok, err := svc.Login(ctx, &models.LoginRequest{Username: "vk", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, tok.Token)
	require.NoError(t, err)

	_, err = db.Exec("UPDATE users SET is_admin = 0 WHERE username = 'vk'")
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, tok.Token)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestAuthorize_BadTokens(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	_, err := svc.Authorize(ctx, "")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = svc.Authorize(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	other := NewAuthService(nil, nil, "another-secret", time.Hour, bcrypt.MinCost)
	tok := signup(t, svc, "vk", "vk@x.com")
	_, err = other.Authorize(ctx, tok.Token)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestAuthorize_ExpiredSession(t *testing.T) {
	svc, db := newAuth(t)
	tok := signup(t, svc, "vk", "vk@x.com")

	svc.(*authService).now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err := svc.Authorize(context.Background(), tok.Token)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n))
	assert.Equal(t, 1, n, "jwt expiry rejects before the session row is consulted")

	purged, err := svc.PurgeExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

func TestLogout_Idempotent(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()
	tok := signup(t, svc, "vk", "vk@x.com")

	require.NoError(t, svc.Logout(ctx, tok.Token))
	require.NoError(t, svc.Logout(ctx, tok.Token))
	require.NoError(t, svc.Logout(ctx, ""))
	require.NoError(t, svc.Logout(ctx, "garbage"))

	_, err := svc.Authorize(ctx, tok.Token)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestEnsureSeedAdmin(t *testing.T) {
	svc, db := newAuth(t)
	ctx := context.Background()
	seed := models.SeedAdmin{Username: "admin", Email: "admin@vishal.com", Password: "admin123", FullName: "Admin User"}

	require.NoError(t, svc.EnsureSeedAdmin(ctx, seed))
	require.NoError(t, svc.EnsureSeedAdmin(ctx, seed))
	assert.Equal(t, 1, countUsers(t, db))

	_, err := svc.Login(ctx, &models.LoginRequest{Username: "admin", Password: "admin123"})
	assert.NoError(t, err)
}

func TestProjectService_CreateNormalizesAndDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(repository.NewSQLiteProjectRepo(db), "/static/images/default-project.jpg")
	ctx := context.Background()

	empty := ""
	p, err := svc.Create(ctx, &models.CreateProjectRequest{
		Title: "T", Description: "D", Category: "web",
		Tags:  []string{"Go", "a,b"},
		Image: &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "a", "b"}, p.Tags)
	require.NotNil(t, p.Image)
	assert.Equal(t, "/static/images/default-project.jpg", *p.Image)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, list[0].ID)
	assert.Equal(t, []string{"Go", "a", "b"}, list[0].Tags)

	_, err = svc.Create(ctx, &models.CreateProjectRequest{Title: "T"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	require.NoError(t, svc.Delete(ctx, p.ID))
	require.NoError(t, svc.Delete(ctx, p.ID))
}

func TestBlogService_SlugAndAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := NewBlogService(repository.NewSQLiteBlogRepo(db), "Vishal Kumar")
	ctx := context.Background()

	post, err := svc.Create(ctx, &models.CreateBlogRequest{
		Title: "Hello Go World", Excerpt: "e", Content: "c", Tags: []string{"go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-go-world", post.Slug)
	assert.Equal(t, "Vishal Kumar", post.Author)

	got, err := svc.GetBySlug(ctx, "hello-go-world")
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, got.Tags)

	_, err = svc.Create(ctx, &models.CreateBlogRequest{Title: "Hello Go World", Excerpt: "e", Content: "c"})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
	assert.Equal(t, "A blog post with this slug already exists", publicMessage(t, err))

	custom, err := svc.Create(ctx, &models.CreateBlogRequest{Title: "Hello Go World", Slug: "hello-2", Excerpt: "e", Content: "c"})
	require.NoError(t, err)
	assert.Equal(t, "hello-2", custom.Slug)
}

func TestCertificationService_DefaultImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewCertificationService(repository.NewSQLiteCertificationRepo(db), "/static/images/default-cert.jpg")
	ctx := context.Background()

	c, err := svc.Create(ctx, &models.CreateCertificationRequest{Title: "CKA", Issuer: "CNCF", Date: "2024"})
	require.NoError(t, err)
	assert.Equal(t, "/static/images/default-cert.jpg", *c.Image)

	custom := "/static/images/cka.png"
	c, err = svc.Create(ctx, &models.CreateCertificationRequest{Title: "CKAD", Issuer: "CNCF", Date: "2024", Image: &custom})
	require.NoError(t, err)
	assert.Equal(t, custom, *c.Image)

	_, err = svc.Create(ctx, &models.CreateCertificationRequest{Title: "x"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestContactService_Submit(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(repository.NewSQLiteContactRepo(db))
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx, &models.ContactRequest{Name: "A", Email: "a@x.com", Message: "hi"}))

	var subject string
	require.NoError(t, db.QueryRow("SELECT subject FROM contact_messages").Scan(&subject))
	assert.Equal(t, "No Subject", subject)

	err := svc.Submit(ctx, &models.ContactRequest{Name: "A", Email: "a@x.com", Message: "   "})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
	assert.Equal(t, "All fields required", publicMessage(t, err))
}

type fixedVisitors int64

func (f fixedVisitors) ActiveVisitors() int64 { return int64(f) }

type fixedCount struct {
	n   int
	err error
}

func (f fixedCount) Count(context.Context) (int, error) { return f.n, f.err }

func TestStatsService_Get(t *testing.T) {
	db := newTestDB(t)
	src := StatsSources{
		Projects:       repository.NewSQLiteProjectRepo(db),
		Blogs:          repository.NewSQLiteBlogRepo(db),
		Certifications: repository.NewSQLiteCertificationRepo(db),
		Users:          repository.NewSQLiteUserRepo(db),
		Messages:       repository.NewSQLiteContactRepo(db),
	}

	stats, err := NewStatsService(src, fixedVisitors(3)).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalProjects)
	assert.Zero(t, stats.TotalBlogs)
	assert.Zero(t, stats.TotalUsers)
	assert.Equal(t, int64(3), stats.ActiveVisitors)
}

func TestStatsService_CountFailure(t *testing.T) {
	boom := errors.New("boom")
	src := StatsSources{
		Projects:       fixedCount{n: 1},
		Blogs:          fixedCount{err: boom},
		Certifications: fixedCount{n: 1},
		Users:          fixedCount{n: 1},
		Messages:       fixedCount{n: 1},
	}

	_, err := NewStatsService(src, fixedVisitors(0)).Get(context.Background())
	assert.ErrorIs(t, err, boom)
}
