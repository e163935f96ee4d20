// Package repository contains the SQLite-backed implementations of the
// domain store contracts, for deployments that want the demo data to
// survive restarts. The in-memory backend in memstore remains the
// default.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	"github.com/esit-pro/service-desk/internal/infrastructure/persistence/mappers"
	"github.com/esit-pro/service-desk/internal/infrastructure/persistence/models"
	"github.com/esit-pro/service-desk/internal/shared/constants"
)

type ServiceRequestRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceRequestMapper
}

var _ servicerequest.Repository = (*ServiceRequestRepository)(nil)

func NewServiceRequestRepository(db *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{
		db:     db,
		mapper: mappers.NewServiceRequestMapper(),
	}
}

func (r *ServiceRequestRepository) List(ctx context.Context, page, pageSize int) ([]*servicerequest.ServiceRequest, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ServiceRequestModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count service requests: %w", err)
	}

	var rows []models.ServiceRequestModel
	err := r.db.WithContext(ctx).
		Order("rowid").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list service requests: %w", err)
	}

	out := make([]*servicerequest.ServiceRequest, 0, len(rows))
	for i := range rows {
		sr, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, sr)
	}
	return out, total, nil
}

func (r *ServiceRequestRepository) GetByID(ctx context.Context, id string) (*servicerequest.ServiceRequest, error) {
	var model models.ServiceRequestModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find service request: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ServiceRequestRepository) Save(ctx context.Context, sr *servicerequest.ServiceRequest) error {
	if sr.ID == "" {
		var total int64
		if err := r.db.WithContext(ctx).Model(&models.ServiceRequestModel{}).Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count service requests: %w", err)
		}
		sr.ID = fmt.Sprintf("%s%d", constants.ServiceRequestIDPrefix, total+1)
	}
	if err := sr.Validate(); err != nil {
		return err
	}

	model, err := r.mapper.ToModel(sr)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service request: %w", err)
	}
	return nil
}

func (r *ServiceRequestRepository) Update(ctx context.Context, sr *servicerequest.ServiceRequest) (bool, error) {
	if err := sr.Validate(); err != nil {
		return false, err
	}

	model, err := r.mapper.ToModel(sr)
	if err != nil {
		return false, err
	}

	var existing int64
	if err := r.db.WithContext(ctx).Model(&models.ServiceRequestModel{}).Where("id = ?", sr.ID).Count(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to check service request: %w", err)
	}
	if existing == 0 {
		return false, nil
	}

	if err := r.db.WithContext(ctx).Where("id = ?", sr.ID).Save(model).Error; err != nil {
		return false, fmt.Errorf("failed to update service request: %w", err)
	}
	return true, nil
}

func (r *ServiceRequestRepository) ReplaceAll(ctx context.Context, requests []*servicerequest.ServiceRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ServiceRequestModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear service requests: %w", err)
		}
		for _, sr := range requests {
			model, err := r.mapper.ToModel(sr)
			if err != nil {
				return err
			}
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to seed service request %s: %w", sr.ID, err)
			}
		}
		return nil
	})
}

func (r *ServiceRequestRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ServiceRequestModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count service requests: %w", err)
	}
	return total, nil
}
