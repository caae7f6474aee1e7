package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	vo "tradehub/internal/domain/support/valueobjects"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
	"tradehub/internal/shared/services/markdown"
)

func TestSendSupportMessageUseCase_StatusTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       vo.TicketStatus
		senderType party.Type
		senderID   *uint
		want       vo.TicketStatus
	}{
		{"admin answers open ticket", vo.StatusOpen, party.TypeAdmin, nil, vo.StatusAnswered},
		{"owner reopens answered ticket", vo.StatusAnswered, party.TypeUser, uintPtr(7), vo.StatusOpen},
		{"owner follow-up keeps open", vo.StatusOpen, party.TypeUser, uintPtr(7), vo.StatusOpen},
		{"admin follow-up keeps answered", vo.StatusAnswered, party.TypeAdmin, uintPtr(1), vo.StatusAnswered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := reconstructTicket(t, 12, 7, tt.from)
			repo := repoWith(tk)
			var persisted vo.TicketStatus
			repo.AppendMessageFunc = func(ctx context.Context, ticket *support.Ticket, msg *support.Message) error {
				persisted = ticket.Status()
				return msg.SetID(100)
			}

			uc := NewSendSupportMessageUseCase(repo, markdown.NewRenderer(), logger.NewNopLogger())
			result, err := uc.Execute(context.Background(), SendSupportMessageCommand{
				TicketID:   12,
				SenderType: tt.senderType,
				SenderID:   tt.senderID,
				Text:       "We're looking into it",
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, persisted)
			assert.Equal(t, tt.want.String(), result.Ticket.Status)
			assert.Equal(t, uint(100), result.Message.ID)
			assert.Equal(t, "We're looking into it", result.Message.Body)
			assert.Contains(t, result.Message.HTML, "<p>")
		})
	}
}

func TestSendSupportMessageUseCase_ClosedTicketRejected(t *testing.T) {
	tk := reconstructTicket(t, 12, 7, vo.StatusClosed)
	repo := repoWith(tk)
	repo.AppendMessageFunc = func(ctx context.Context, ticket *support.Ticket, msg *support.Message) error {
		t.Fatal("closed ticket must not reach the store")
		return nil
	}

	uc := NewSendSupportMessageUseCase(repo, nil, logger.NewNopLogger())
	for _, cmd := range []SendSupportMessageCommand{
		{TicketID: 12, SenderType: party.TypeUser, SenderID: uintPtr(7), Text: "hello?"},
		{TicketID: 12, SenderType: party.TypeAdmin, Text: "reopening"},
	} {
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, apperrors.IsTerminalStateError(err))
	}
	assert.Equal(t, vo.StatusClosed, tk.Status())
}

func TestSendSupportMessageUseCase_ClosedConcurrently(t *testing.T) {
	tk := reconstructTicket(t, 12, 7, vo.StatusOpen)
	repo := repoWith(tk)
	repo.AppendMessageFunc = func(ctx context.Context, ticket *support.Ticket, msg *support.Message) error {
		return support.ErrTicketClosed
	}

	uc := NewSendSupportMessageUseCase(repo, nil, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), SendSupportMessageCommand{
		TicketID: 12, SenderType: party.TypeAdmin, Text: "too late",
	})
	assert.True(t, apperrors.IsTerminalStateError(err))
}

func TestSendSupportMessageUseCase_Rejections(t *testing.T) {
	tk := reconstructTicket(t, 12, 7, vo.StatusOpen)
	repo := repoWith(tk)
	repo.AppendMessageFunc = func(ctx context.Context, ticket *support.Ticket, msg *support.Message) error {
		t.Fatal("rejected message must not be stored")
		return nil
	}
	uc := NewSendSupportMessageUseCase(repo, nil, logger.NewNopLogger())

	tests := []struct {
		name  string
		cmd   SendSupportMessageCommand
		check func(error) bool
	}{
		{"missing ticket id", SendSupportMessageCommand{SenderType: party.TypeAdmin, Text: "x"}, apperrors.IsValidationError},
		{"blank text", SendSupportMessageCommand{TicketID: 12, SenderType: party.TypeAdmin, Text: "  \n"}, apperrors.IsValidationError},
		{"zero width only", SendSupportMessageCommand{TicketID: 12, SenderType: party.TypeAdmin, Text: "\u200b\u200b"}, apperrors.IsValidationError},
		{"owner without id", SendSupportMessageCommand{TicketID: 12, SenderType: party.TypeUser, Text: "x"}, apperrors.IsValidationError},
		{"unknown sender type", SendSupportMessageCommand{TicketID: 12, SenderType: "robot", Text: "x"}, apperrors.IsValidationError},
		{"not the owner", SendSupportMessageCommand{TicketID: 12, SenderType: party.TypeUser, SenderID: uintPtr(8), Text: "x"}, apperrors.IsForbiddenError},
		{"company on user ticket", SendSupportMessageCommand{TicketID: 12, SenderType: party.TypeCompany, SenderID: uintPtr(7), Text: "x"}, apperrors.IsForbiddenError},
		{"missing ticket", SendSupportMessageCommand{TicketID: 13, SenderType: party.TypeAdmin, Text: "x"}, apperrors.IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, tt.check(err), err.Error())
		})
	}
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

func TestSendSupportMessageUseCase_InvisibleTextNeverLoadsTicket(t *testing.T) {
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*support.Ticket, error) {
			t.Fatal("ticket must not be loaded")
			return nil, nil
		},
		AppendMessageFunc: func(ctx context.Context, ticket *support.Ticket, msg *support.Message) error {
			t.Fatal("message must not be stored")
			return nil
		},
	}
	uc := NewSendSupportMessageUseCase(repo, nil, logger.NewNopLogger())

	for _, body := range []string{"\u200b", " \ufeff ", "\u2060\t"} {
		_, err := uc.Execute(context.Background(), SendSupportMessageCommand{
			TicketID: 12, SenderType: party.TypeUser, SenderID: uintPtr(7), Text: body,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
		assert.Equal(t, "text", apperrors.GetAppError(err).Details)
	}
}

func TestSendSupportMessageUseCase_StoresTextAndSanitizesOnRender(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		absent string
	}{
		{"comparison", "if x<y and y>z then ok", ""},
		{"script", "see <script>alert(1)</script> here", "<script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := reconstructTicket(t, 12, 7, vo.StatusOpen)
			uc := NewSendSupportMessageUseCase(repoWith(tk), markdown.NewRenderer(), logger.NewNopLogger())

			result, err := uc.Execute(context.Background(), SendSupportMessageCommand{
				TicketID: 12, SenderType: party.TypeUser, SenderID: uintPtr(7), Text: tt.text,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.text, result.Message.Body)
			assert.NotEmpty(t, result.Message.HTML)
			if tt.absent != "" {
				assert.NotContains(t, result.Message.HTML, tt.absent)
			}
		})
	}
}

func TestSendSupportMessageUseCase_StorageFailure(t *testing.T) {
	tk := reconstructTicket(t, 12, 7, vo.StatusOpen)
	repo := repoWith(tk)
	storageErr := errors.New("lock wait timeout")
	repo.AppendMessageFunc = func(ctx context.Context, ticket *support.Ticket, msg *support.Message) error {
		return storageErr
	}

	uc := NewSendSupportMessageUseCase(repo, nil, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), SendSupportMessageCommand{
		TicketID: 12, SenderType: party.TypeAdmin, Text: "hi",
	})
	assert.ErrorIs(t, err, storageErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.GetAppError(err).Type)
}
