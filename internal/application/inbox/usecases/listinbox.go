package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tradehub/internal/application/inbox/dto"
	"tradehub/internal/domain/conversation"
	"tradehub/internal/domain/identity"
	"tradehub/internal/domain/inbox"
	"tradehub/internal/domain/shared/party"
	"tradehub/internal/domain/support"
	apperrors "tradehub/internal/shared/errors"
	"tradehub/internal/shared/logger"
)

const (
	// DefaultSupportDisplayName labels the support side of every ticket.
	DefaultSupportDisplayName = "Support"

	identityLookupConcurrency = 8
)

type ListInboxQuery struct {
	Viewer party.Viewer
}

type ListInboxExecutor interface {
	Execute(ctx context.Context, query ListInboxQuery) ([]dto.EntryDTO, error)
}

type ListInboxUseCase struct {
	conversationRepo   conversation.ConversationRepository
	ticketRepo         support.TicketRepository
	resolver           identity.Resolver
	supportDisplayName string
	logger             logger.Interface
}

func NewListInboxUseCase(
	conversationRepo conversation.ConversationRepository,
	ticketRepo support.TicketRepository,
	resolver identity.Resolver,
	supportDisplayName string,
	logger logger.Interface,
) *ListInboxUseCase {
	if supportDisplayName == "" {
		supportDisplayName = DefaultSupportDisplayName
	}
	return &ListInboxUseCase{
		conversationRepo:   conversationRepo,
		ticketRepo:         ticketRepo,
		resolver:           resolver,
		supportDisplayName: supportDisplayName,
		logger:             logger,
	}
}

// Execute merges the viewer's conversations and, for users only, their
// support tickets into one list sorted by last activity. Companies never
// see support entries.
func (uc *ListInboxUseCase) Execute(ctx context.Context, query ListInboxQuery) ([]dto.EntryDTO, error) {
	viewer := query.Viewer
	if !viewer.Type.IsParticipant() {
		return nil, apperrors.NewForbiddenError("only users and companies have an inbox")
	}
	if viewer.ID == 0 {
		return nil, apperrors.NewValidationError("party ID is required", "id")
	}

	var (
		conversations []*conversation.Summary
		tickets       []*support.TicketSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if viewer.Type == party.TypeUser {
			conversations, err = uc.conversationRepo.ListForUser(gctx, viewer.ID)
		} else {
			conversations, err = uc.conversationRepo.ListForCompany(gctx, viewer.ID)
		}
		return err
	})
	if viewer.Type == party.TypeUser {
		g.Go(func() error {
			var err error
			tickets, err = uc.ticketRepo.ListForOwner(gctx, party.TypeUser, viewer.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to load inbox",
			"party_type", viewer.Type,
			"party_id", viewer.ID,
			"error", err)
		return nil, apperrors.NewInternalError("failed to load inbox").WithCause(err)
	}

	identities := uc.resolveCounterparts(ctx, viewer.Type, conversations)

	entries := make([]inbox.Entry, 0, len(conversations)+len(tickets))
	for i, s := range conversations {
		entries = append(entries, inbox.NewConversationEntry(s, viewer.Type, identities[i]))
	}
	for _, s := range tickets {
		entries = append(entries, inbox.NewSupportEntry(s, uc.supportDisplayName))
	}
	inbox.Sort(entries)

	return dto.ToEntryDTOs(entries), nil
}

// resolveCounterparts looks up the other side of every conversation. A
// failed lookup leaves that identity nil so the inbox still renders.
func (uc *ListInboxUseCase) resolveCounterparts(ctx context.Context, viewerType party.Type, summaries []*conversation.Summary) []*identity.Identity {
	out := make([]*identity.Identity, len(summaries))
	if len(summaries) == 0 {
		return out
	}

	var g errgroup.Group
	g.SetLimit(identityLookupConcurrency)
	for i, s := range summaries {
		otherType, otherID := s.Conversation.CounterpartOf(viewerType)
		g.Go(func() error {
			ident, err := uc.resolver.Resolve(ctx, otherType, otherID)
			if err != nil {
				uc.logger.Warnw("failed to resolve identity",
					"party_type", otherType,
					"party_id", otherID,
					"error", err)
				return nil
			}
			out[i] = ident
			return nil
		})
	}
	_ = g.Wait()

	return out
}
