package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/rheareserve/booking-service/internal/domain"
	"github.com/rheareserve/booking-service/pkg/dbmetrics"
	"github.com/rheareserve/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами
// Профили ведёт сервис аккаунтов, здесь только чтение для уведомлений и выдач
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Список колонок должен совпадать со схемой clients в migrations/001_init.sql
	query, args, err := psqlbuilder.Select("id", "name", "last_name", "email").
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var client domain.Client
	var lastName, email sql.NullString
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.Name,
		&lastName,
		&email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	client.LastName = lastName.String
	client.Email = email.String

	return &client, nil
}
