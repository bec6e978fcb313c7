package services

import (
	"context"

	"github.com/klarsen/folio/internal/models"
	"github.com/klarsen/folio/internal/repositories"
	"github.com/klarsen/folio/internal/utils"
	"github.com/klarsen/folio/internal/validation"
)

type ContactService interface {
	Submit(ctx context.Context, m *models.Message) (*models.Message, error)
}

type contactService struct {
	messages repositories.MessageRepository
}

func NewContactService(messages repositories.MessageRepository) ContactService {
	return &contactService{messages: messages}
}

// Submit validates the submission and persists it. Validation runs before
// any store access; an invalid payload never reaches the write path.
func (s *contactService) Submit(ctx context.Context, m *models.Message) (*models.Message, error) {
	const op = "ContactService.Submit"

	if verr := validation.Message(m); verr != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, verr.Reason, verr)
	}

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist message", err)
	}
	return m, nil
}
