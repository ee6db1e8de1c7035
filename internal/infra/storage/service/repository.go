package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/bethsalao/BS-BookingService/internal/domain"
	"github.com/bethsalao/BS-BookingService/pkg/dbmetrics"
	"github.com/bethsalao/BS-BookingService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"active_time_start",
	"wait_time",
	"active_time_end",
	"total_time",
	"created_at",
}

// Repository репозиторий каталога услуг салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает услугу. total_time всегда вычисляется из трёх фаз здесь,
// значение от вызывающей стороны не принимается.
func (r *Repository) Create(ctx context.Context, draft *domain.ServiceDraft) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	svc := &domain.Service{
		ID:              uuid.NewString(),
		Name:            draft.Name,
		ActiveTimeStart: draft.ActiveTimeStart,
		WaitTime:        draft.WaitTime,
		ActiveTimeEnd:   draft.ActiveTimeEnd,
		TotalTime:       domain.ComputeTotalTime(draft.ActiveTimeStart, draft.WaitTime, draft.ActiveTimeEnd),
	}

	query, args, err := psqlbuilder.Insert("services").
		Columns(
			"id",
			"name",
			"active_time_start",
			"wait_time",
			"active_time_end",
			"total_time",
		).
		Values(
			svc.ID,
			svc.Name,
			svc.ActiveTimeStart,
			svc.WaitTime,
			svc.ActiveTimeEnd,
			svc.TotalTime,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	svc.CreatedAt = createdAt.Time

	return svc, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// List получает все услуги каталога
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Delete удаляет услугу из каталога. Записи, ссылающиеся на неё, остаются
// с висячим service_id — движок доступности обрабатывает это консервативно.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var createdAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.ActiveTimeStart,
		&svc.WaitTime,
		&svc.ActiveTimeEnd,
		&svc.TotalTime,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	svc.CreatedAt = createdAt.Time
	return &svc, nil
}
