package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/esit-pro/service-desk/internal/domain/message"
	"github.com/esit-pro/service-desk/internal/infrastructure/persistence/mappers"
	"github.com/esit-pro/service-desk/internal/infrastructure/persistence/models"
	"github.com/esit-pro/service-desk/internal/shared/constants"
)

type ThreadRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

var _ message.ThreadRepository = (*ThreadRepository)(nil)

func NewThreadRepository(db *gorm.DB) *ThreadRepository {
	return &ThreadRepository{
		db:     db,
		mapper: mappers.NewMessageMapper(),
	}
}

func (r *ThreadRepository) List(ctx context.Context, page, pageSize int) ([]*message.MessageThread, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.MessageThreadModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count threads: %w", err)
	}

	var rows []models.MessageThreadModel
	err := r.db.WithContext(ctx).
		Order("rowid").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list threads: %w", err)
	}

	out := make([]*message.MessageThread, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ThreadToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, nil
}

func (r *ThreadRepository) GetByID(ctx context.Context, id string) (*message.MessageThread, error) {
	var model models.MessageThreadModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find thread: %w", err)
	}
	return r.mapper.ThreadToDomain(&model)
}

func (r *ThreadRepository) Create(ctx context.Context, t *message.MessageThread) error {
	if t.ID == "" {
		var total int64
		if err := r.db.WithContext(ctx).Model(&models.MessageThreadModel{}).Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count threads: %w", err)
		}
		t.ID = fmt.Sprintf("%s%d", constants.ThreadIDPrefix, total+1)
	}
	for i := range t.Messages {
		if t.Messages[i].ID == "" {
			t.Messages[i].ID = fmt.Sprintf("%s-msg-%d", t.ID, i+1)
		}
		if t.Messages[i].Timestamp.IsZero() {
			t.Messages[i].Timestamp = time.Now()
		}
	}
	if err := t.Validate(); err != nil {
		return err
	}

	model, err := r.mapper.ThreadToModel(t)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create thread: %w", err)
	}
	return nil
}

func (r *ThreadRepository) AppendMessage(ctx context.Context, threadID string, tm message.ThreadMessage) (*message.ThreadMessage, bool, error) {
	t, err := r.GetByID(ctx, threadID)
	if err != nil {
		return nil, false, err
	}
	if t == nil {
		return nil, false, nil
	}

	tm.ID = t.NextMessageID()
	if tm.Timestamp.IsZero() {
		tm.Timestamp = time.Now()
	}
	if err := tm.Validate(); err != nil {
		return nil, true, err
	}
	t.Append(tm)

	if err := r.saveThread(ctx, t); err != nil {
		return nil, true, err
	}
	return &tm, true, nil
}

func (r *ThreadRepository) Update(ctx context.Context, id string, patch message.ThreadPatch) (bool, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}

	patch.Apply(t)
	if err := r.saveThread(ctx, t); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ThreadRepository) MarkMessageRead(ctx context.Context, threadID, messageID string) (bool, error) {
	t, err := r.GetByID(ctx, threadID)
	if err != nil {
		return false, err
	}
	if t == nil {
		return false, nil
	}
	if !t.MarkMessageRead(messageID) {
		return false, nil
	}
	if err := r.saveThread(ctx, t); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ThreadRepository) ReplaceAll(ctx context.Context, threads []*message.MessageThread) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MessageThreadModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear threads: %w", err)
		}
		for _, t := range threads {
			model, err := r.mapper.ThreadToModel(t)
			if err != nil {
				return err
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to seed thread %s: %w", t.ID, err)
			}
		}
		return nil
	})
}

func (r *ThreadRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.MessageThreadModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count threads: %w", err)
	}
	return total, nil
}

func (r *ThreadRepository) saveThread(ctx context.Context, t *message.MessageThread) error {
	model, err := r.mapper.ThreadToModel(t)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", t.ID).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update thread: %w", err)
	}
	return nil
}
