package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pocotu/sgf-backend-sub000/internal/model"
)

// GroupRepository 班级数据访问接口
type GroupRepository interface {
	GetByID(ctx context.Context, id int) (*model.Group, error)
}

type groupRepo struct {
	db *gorm.DB
}

// NewGroupRepo 创建 GroupRepository 实例
func NewGroupRepo(db *gorm.DB) GroupRepository {
	return &groupRepo{db: db}
}

func (r *groupRepo) GetByID(ctx context.Context, id int) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).
		Where("group_id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}
