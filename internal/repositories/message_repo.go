package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/klarsen/folio/internal/models"
)

// MessageRepository is write-only from the API's point of view: contact
// submissions are inserted and never read back through this process.
type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

// Create inserts the row and fills in the generated id and createdAt.
func (r *messageRepo) Create(ctx context.Context, m *models.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}
