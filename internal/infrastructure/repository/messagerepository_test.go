package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/infrastructure/persistence/models"
	"tradehub/internal/shared/db"
)

func TestMessageRepository_AppendAndList(t *testing.T) {
	conn := setupTestDB(t)
	convRepo := NewConversationRepository(conn)
	msgRepo := NewMessageRepository(conn)
	ctx := context.Background()

	c, err := convRepo.FindOrCreate(ctx, 7, 3)
	require.NoError(t, err)

	first := sendTestMessage(t, msgRepo, c, party.TypeUser, "Hello")
	second := sendTestMessage(t, msgRepo, c, party.TypeCompany, "Hi there")
	assert.NotZero(t, first.ID())
	assert.Greater(t, second.ID(), first.ID())

	messages, err := msgRepo.ListByConversation(ctx, c.ID())
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Hello", messages[0].Body())
	assert.Equal(t, "Hi there", messages[1].Body())
	assert.Nil(t, messages[1].ReadAt())

	stored, err := convRepo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, second.CreatedAt().UnixMilli(), stored.UpdatedAt().UnixMilli())
}

func TestMessageRepository_AppendJoinsOuterTransaction(t *testing.T) {
	conn := setupTestDB(t)
	convRepo := NewConversationRepository(conn)
	msgRepo := NewMessageRepository(conn)
	txMgr := db.NewTransactionManager(conn)
	ctx := context.Background()

	c, err := convRepo.FindOrCreate(ctx, 7, 3)
	require.NoError(t, err)

	abort := errors.New("abort")
	err = txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		msg, err := c.NewMessage(party.TypeUser, 7, "rolled back")
		require.NoError(t, err)
		require.NoError(t, msgRepo.Append(txCtx, msg))
		return abort
	})
	require.ErrorIs(t, err, abort)

	messages, err := msgRepo.ListByConversation(ctx, c.ID())
	require.NoError(t, err)
	assert.Empty(t, messages)

	err = txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		msg, err := c.NewMessage(party.TypeUser, 7, "kept")
		require.NoError(t, err)
		return msgRepo.Append(txCtx, msg)
	})
	require.NoError(t, err)

	messages, err = msgRepo.ListByConversation(ctx, c.ID())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "kept", messages[0].Body())
}

func TestMessageRepository_OrderingWithEqualTimestamps(t *testing.T) {
	conn := setupTestDB(t)
	convRepo := NewConversationRepository(conn)
	msgRepo := NewMessageRepository(conn)
	ctx := context.Background()

	c, err := convRepo.FindOrCreate(ctx, 7, 3)
	require.NoError(t, err)

	// Inserted out of timestamp order, with a tie at 2000.
	rows := []models.MessageModel{
		{ConversationID: c.ID(), SenderType: "user", SenderID: 7, Body: "c", CreatedAt: 3000},
		{ConversationID: c.ID(), SenderType: "user", SenderID: 7, Body: "a", CreatedAt: 2000},
		{ConversationID: c.ID(), SenderType: "company", SenderID: 3, Body: "b", CreatedAt: 2000},
		{ConversationID: c.ID(), SenderType: "company", SenderID: 3, Body: "first", CreatedAt: 1000},
	}
	for i := range rows {
		require.NoError(t, conn.Create(&rows[i]).Error)
	}

	messages, err := msgRepo.ListByConversation(ctx, c.ID())
	require.NoError(t, err)

	var bodies []string
	for i, m := range messages {
		bodies = append(bodies, m.Body())
		if i > 0 {
			prev := messages[i-1]
			assert.False(t, m.CreatedAt().Before(prev.CreatedAt()))
			if m.CreatedAt().Equal(prev.CreatedAt()) {
				assert.Greater(t, m.ID(), prev.ID())
			}
		}
	}
	assert.Equal(t, []string{"first", "a", "b", "c"}, bodies)
}

func TestMessageRepository_MarkRead(t *testing.T) {
	conn := setupTestDB(t)
	convRepo := NewConversationRepository(conn)
	msgRepo := NewMessageRepository(conn)
	ctx := context.Background()

	c, err := convRepo.FindOrCreate(ctx, 7, 3)
	require.NoError(t, err)
	sendTestMessage(t, msgRepo, c, party.TypeUser, "Hello")
	sendTestMessage(t, msgRepo, c, party.TypeCompany, "Hi there")
	sendTestMessage(t, msgRepo, c, party.TypeCompany, "Still there?")

	touched, err := msgRepo.MarkRead(ctx, c.ID(), party.TypeUser)
	require.NoError(t, err)
	assert.Equal(t, int64(2), touched)

	touched, err = msgRepo.MarkRead(ctx, c.ID(), party.TypeUser)
	require.NoError(t, err)
	assert.Zero(t, touched, "second call is a no-op")

	list, err := convRepo.ListForUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Zero(t, list[0].UnreadCount)

	// The company's own view is untouched by the user's read.
	companyList, err := convRepo.ListForCompany(ctx, 3)
	require.NoError(t, err)
	require.Len(t, companyList, 1)
	assert.Equal(t, int64(1), companyList[0].UnreadCount)

	messages, err := msgRepo.ListByConversation(ctx, c.ID())
	require.NoError(t, err)
	assert.Nil(t, messages[0].ReadAt(), "user's own message stays unread for the company")
	assert.NotNil(t, messages[1].ReadAt())
}

func TestMessageRepository_MarkRead_MissingConversation(t *testing.T) {
	conn := setupTestDB(t)
	msgRepo := NewMessageRepository(conn)

	touched, err := msgRepo.MarkRead(context.Background(), 404, party.TypeCompany)
	require.NoError(t, err)
	assert.Zero(t, touched)
}

func TestMessageRepository_MarkRead_RejectsAdmin(t *testing.T) {
	conn := setupTestDB(t)
	msgRepo := NewMessageRepository(conn)

	_, err := msgRepo.MarkRead(context.Background(), 1, party.TypeAdmin)
	assert.Error(t, err)
}

func TestConversationScenario_UnreadLifecycle(t *testing.T) {
	conn := setupTestDB(t)
	convRepo := NewConversationRepository(conn)
	msgRepo := NewMessageRepository(conn)
	ctx := context.Background()

	c, err := convRepo.FindOrCreate(ctx, 7, 3)
	require.NoError(t, err)
	sendTestMessage(t, msgRepo, c, party.TypeUser, "Hello")
	sendTestMessage(t, msgRepo, c, party.TypeCompany, "Hi there")

	list, err := convRepo.ListForUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hi there", *list[0].LastBody)
	assert.Equal(t, int64(1), list[0].UnreadCount)

	_, err = msgRepo.MarkRead(ctx, c.ID(), party.TypeUser)
	require.NoError(t, err)

	list, err = convRepo.ListForUser(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, list[0].UnreadCount)
}
