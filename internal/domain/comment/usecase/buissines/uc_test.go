package buissines

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	articleentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/entities"
	authentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/entities"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/errors"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/repository/postgres"
)

type fakeProducer struct {
	approved []uint
}

func (f *fakeProducer) SendCommentApproved(_ context.Context, c *entities.Comment) error {
	f.approved = append(f.approved, c.ID)
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&authentities.User{},
		&articleentities.Article{},
		&entities.Comment{},
	))

	return db
}

func newTestUseCase(t *testing.T, db *gorm.DB) (*UseCase, *fakeProducer) {
	t.Helper()

	producer := &fakeProducer{}
	uc := NewUseCase(
		postgres.NewCommentRepository(db),
		postgres.NewArticleReader(db),
		postgres.NewAdminReader(db),
		producer,
		zerolog.Nop(),
	)
	return uc, producer
}

func createUser(t *testing.T, db *gorm.DB, telegramID int64, isAdmin bool) uint {
	t.Helper()

	user := &authentities.User{TelegramID: telegramID, FirstName: "Олег", IsAdmin: isAdmin}
	require.NoError(t, db.Create(user).Error)
	return user.ID
}

func createPublishedArticle(t *testing.T, db *gorm.DB, authorID uint) uint {
	t.Helper()

	article := &articleentities.Article{
		Title:     "T",
		Content:   "content",
		Excerpt:   "content",
		ChannelID: 1,
		AuthorID:  authorID,
		Status:    articleentities.StatusPublished,
	}
	require.NoError(t, db.Create(article).Error)
	return article.ID
}

func TestAdd_CreatesPendingComment(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db)
	author := createUser(t, db, 100, false)
	articleID := createPublishedArticle(t, db, author)

	resp, err := uc.Add(context.Background(), author, &dto.AddCommentRequest{
		ArticleID: articleID,
		Text:      "первый!",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)

	var comment entities.Comment
	require.NoError(t, db.First(&comment, resp.ID).Error)
	assert.Equal(t, entities.StatusPending, comment.Status)
}

func TestAdd_RequiresAuthentication(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db)

	_, err := uc.Add(context.Background(), 0, &dto.AddCommentRequest{ArticleID: 1, Text: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAdd_RejectsUnknownArticle(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db)
	author := createUser(t, db, 100, false)

	_, err := uc.Add(context.Background(), author, &dto.AddCommentRequest{ArticleID: 42, Text: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrArticleNotFound)
}

func TestList_PendingCommentInvisibleUntilApproved(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db)
	author := createUser(t, db, 100, false)
	admin := createUser(t, db, 200, true)
	articleID := createPublishedArticle(t, db, author)

	added, err := uc.Add(context.Background(), author, &dto.AddCommentRequest{
		ArticleID: articleID,
		Text:      "ждёт модерации",
	})
	require.NoError(t, err)

	visible, err := uc.List(context.Background(), 0, &dto.ListCommentsRequest{ArticleID: articleID})
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = uc.Moderate(context.Background(), admin, &dto.ModerateCommentRequest{
		CommentID: added.ID,
		Action:    "approve",
	})
	require.NoError(t, err)

	visible, err = uc.List(context.Background(), 0, &dto.ListCommentsRequest{ArticleID: articleID})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "ждёт модерации", visible[0].Text)
	assert.Equal(t, "Олег", visible[0].AuthorName)
}

func TestList_ModerationViewRequiresAdministrator(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db)
	reader := createUser(t, db, 100, false)
	admin := createUser(t, db, 200, true)
	articleID := createPublishedArticle(t, db, reader)

	_, err := uc.Add(context.Background(), reader, &dto.AddCommentRequest{
		ArticleID: articleID,
		Text:      "x",
	})
	require.NoError(t, err)

	_, err = uc.List(context.Background(), reader, &dto.ListCommentsRequest{Status: "pending"})
	assert.ErrorIs(t, err, domainerrors.ErrModerationForbidden)

	queue, err := uc.List(context.Background(), admin, &dto.ListCommentsRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, queue, 1)
}

func TestModerate_ApproveSendsEvent(t *testing.T) {
	db := newTestDB(t)
	uc, producer := newTestUseCase(t, db)
	author := createUser(t, db, 100, false)
	admin := createUser(t, db, 200, true)
	articleID := createPublishedArticle(t, db, author)

	added, err := uc.Add(context.Background(), author, &dto.AddCommentRequest{
		ArticleID: articleID,
		Text:      "x",
	})
	require.NoError(t, err)

	resp, err := uc.Moderate(context.Background(), admin, &dto.ModerateCommentRequest{
		CommentID: added.ID,
		Action:    "approve",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, []uint{added.ID}, producer.approved)
}

func TestModerate_TerminalStateCannotBeModeratedAgain(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db)
	author := createUser(t, db, 100, false)
	admin := createUser(t, db, 200, true)
	articleID := createPublishedArticle(t, db, author)

	added, err := uc.Add(context.Background(), author, &dto.AddCommentRequest{
		ArticleID: articleID,
		Text:      "x",
	})
	require.NoError(t, err)

	_, err = uc.Moderate(context.Background(), admin, &dto.ModerateCommentRequest{
		CommentID: added.ID,
		Action:    "reject",
	})
	require.NoError(t, err)

	_, err = uc.Moderate(context.Background(), admin, &dto.ModerateCommentRequest{
		CommentID: added.ID,
		Action:    "approve",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotPending)

	var comment entities.Comment
	require.NoError(t, db.First(&comment, added.ID).Error)
	assert.Equal(t, entities.StatusRejected, comment.Status)
}

func TestModerate_RequiresAdministrator(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db)
	author := createUser(t, db, 100, false)
	articleID := createPublishedArticle(t, db, author)

	added, err := uc.Add(context.Background(), author, &dto.AddCommentRequest{
		ArticleID: articleID,
		Text:      "x",
	})
	require.NoError(t, err)

	_, err = uc.Moderate(context.Background(), author, &dto.ModerateCommentRequest{
		CommentID: added.ID,
		Action:    "approve",
	})
	assert.ErrorIs(t, err, domainerrors.ErrModerationForbidden)
}

func TestModerate_UnknownComment(t *testing.T) {
	db := newTestDB(t)
	uc, _ := newTestUseCase(t, db)
	admin := createUser(t, db, 200, true)

	_, err := uc.Moderate(context.Background(), admin, &dto.ModerateCommentRequest{
		CommentID: 404,
		Action:    "approve",
	})
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}
