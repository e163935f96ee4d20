package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/infrastructure/persistence/mappers"
	"github.com/esit-pro/service-desk/internal/infrastructure/persistence/models"
	"github.com/esit-pro/service-desk/internal/shared/constants"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

var _ message.Repository = (*MessageRepository)(nil)

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
	}
}

// applyFilter translates the partial-field filter into WHERE clauses.
func applyFilter(q *gorm.DB, filter message.Filter) *gorm.DB {
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		q = q.Where("category = ?", filter.Category.String())
	}
	if filter.IsRead != nil {
		q = q.Where("is_read = ?", *filter.IsRead)
	}
	if filter.IsFlagged != nil {
		q = q.Where("is_flagged = ?", *filter.IsFlagged)
	}
	if filter.AssignedTo != nil {
		q = q.Where("assigned_to = ?", *filter.AssignedTo)
	}
	if filter.RelatedServiceID != nil {
		q = q.Where("related_service_id = ?", *filter.RelatedServiceID)
	}
	return q
}

func (r *MessageRepository) List(ctx context.Context, filter message.Filter, page, pageSize int) ([]*message.ClientMessage, int64, error) {
	base := applyFilter(r.db.WithContext(ctx).Model(&models.ClientMessageModel{}), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	var rows []models.ClientMessageModel
	err := applyFilter(r.db.WithContext(ctx), filter).
		Order("rowid").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}

	return r.toDomainSlice(rows, total)
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*message.ClientMessage, error) {
	var model models.ClientMessageModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find message: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *MessageRepository) Save(ctx context.Context, m *message.ClientMessage) error {
	if m.ID == "" {
		var total int64
		if err := r.db.WithContext(ctx).Model(&models.ClientMessageModel{}).Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count messages: %w", err)
		}
		m.ID = fmt.Sprintf("%s%d", constants.MessageIDPrefix, total+1)
	}
	if err := m.Validate(); err != nil {
		return err
	}

	model, err := r.mapper.ToModel(m)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

func (r *MessageRepository) Update(ctx context.Context, id string, patch message.Patch) (bool, error) {
	m, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, nil
	}
	if err := patch.Apply(m); err != nil {
		return false, err
	}

	model, err := r.mapper.ToModel(m)
	if err != nil {
		return false, err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Save(model).Error; err != nil {
		return false, fmt.Errorf("failed to update message: %w", err)
	}
	return true, nil
}

func (r *MessageRepository) BatchUpdate(ctx context.Context, ids []string, patch message.Patch) (int64, error) {
	var updated int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		batch := &MessageRepository{db: tx, mapper: r.mapper}
		for _, id := range ids {
			found, err := batch.Update(ctx, id, patch)
			if err != nil {
				return err
			}
			if found {
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (r *MessageRepository) Search(ctx context.Context, query string, page, pageSize int) ([]*message.ClientMessage, int64, error) {
	pattern := "%" + query + "%"
	match := func(q *gorm.DB) *gorm.DB {
		return q.Where(
			"subject LIKE ? OR content LIKE ? OR client_name LIKE ? OR client_email LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := match(r.db.WithContext(ctx).Model(&models.ClientMessageModel{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	var rows []models.ClientMessageModel
	err := match(r.db.WithContext(ctx)).
		Order("rowid").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search messages: %w", err)
	}

	return r.toDomainSlice(rows, total)
}

func (r *MessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.ClientMessageModel{}).
		Where("is_read = ?", false).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return n, nil
}

func (r *MessageRepository) ListByRelatedService(ctx context.Context, serviceRequestID string) ([]*message.ClientMessage, error) {
	var rows []models.ClientMessageModel
	err := r.db.WithContext(ctx).
		Where("related_service_id = ?", serviceRequestID).
		Order("rowid").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list linked messages: %w", err)
	}

	out, _, err := r.toDomainSlice(rows, 0)
	return out, err
}

func (r *MessageRepository) ReplaceAll(ctx context.Context, msgs []*message.ClientMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ClientMessageModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear messages: %w", err)
		}
		for _, m := range msgs {
			model, err := r.mapper.ToModel(m)
			if err != nil {
				return err
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to seed message %s: %w", m.ID, err)
			}
		}
		return nil
	})
}

func (r *MessageRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ClientMessageModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return total, nil
}

func (r *MessageRepository) toDomainSlice(rows []models.ClientMessageModel, total int64) ([]*message.ClientMessage, int64, error) {
	out := make([]*message.ClientMessage, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, nil
}
