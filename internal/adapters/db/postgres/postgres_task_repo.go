package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/task/model"
)

type PostgresTaskRepo struct {
	db *gorm.DB
}

func NewPostgresTaskRepo(db *gorm.DB) *PostgresTaskRepo {
	return &PostgresTaskRepo{db: db}
}

func (p *PostgresTaskRepo) CreateTask(ctx context.Context, task model.Task) (int64, error) {
	res := p.db.WithContext(ctx).Create(&task)
	if err := res.Error; err != nil {
		return 0, customErrors.WrapInternal(err, "CreateTask")
	}
	return task.ID, nil
}

func (p *PostgresTaskRepo) GetTaskByID(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	res := p.db.WithContext(ctx).Where("id = ?", id).First(&t)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return model.Task{}, customErrors.ErrNotFound
	}
	if err := res.Error; err != nil {
		return model.Task{}, customErrors.WrapInternal(err, "GetTaskByID")
	}

	return t, nil
}

func (p *PostgresTaskRepo) ListTasksByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	var tasks []model.Task
	res := p.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&tasks)
	if err := res.Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListTasksByUser")
	}
	return tasks, nil
}

func (p *PostgresTaskRepo) ListAllTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	res := p.db.WithContext(ctx).Order("user_id, id").Find(&tasks)
	if err := res.Error; err != nil {
		return nil, customErrors.WrapInternal(err, "ListAllTasks")
	}
	return tasks, nil
}

func (p *PostgresTaskRepo) UpdateTask(ctx context.Context, task model.Task) error {
	now := time.Now()
	task.UpdatedAt = &now

	res := p.db.WithContext(ctx).Save(&task)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "UpdateTask")
	}

	return nil
}

func (p *PostgresTaskRepo) DeleteTask(ctx context.Context, id int64) error {
	res := p.db.WithContext(ctx).Delete(&model.Task{}, id)
	if err := res.Error; err != nil {
		return customErrors.WrapInternal(err, "DeleteTask")
	}
	if res.RowsAffected == 0 {
		return customErrors.ErrNotFound
	}

	return nil
}
