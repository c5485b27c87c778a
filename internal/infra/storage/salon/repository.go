package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avelanse/salon-booking-service/internal/domain"
	"github.com/avelanse/salon-booking-service/pkg/dbmetrics"
	"github.com/avelanse/salon-booking-service/pkg/psqlbuilder"
	"github.com/avelanse/salon-booking-service/pkg/types"
)

var salonColumns = []string{
	"id",
	"owner_id",
	"name",
	"address",
	"city",
	"state",
	"zip",
	"min_service_charge",
	"max_service_charge",
	"working_days",
	"start_time",
	"end_time",
	"break_start_time",
	"break_end_time",
	"slot_duration_minutes",
	"max_booking_per_slot",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с салонами и их конфигурацией расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый салон
func (r *Repository) Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salons").
		Columns(
			"owner_id",
			"name",
			"address",
			"city",
			"state",
			"zip",
			"min_service_charge",
			"max_service_charge",
			"working_days",
			"start_time",
			"end_time",
			"break_start_time",
			"break_end_time",
			"slot_duration_minutes",
			"max_booking_per_slot",
			"is_active",
		).
		Values(
			salon.OwnerID,
			salon.Name,
			salon.Address,
			salon.City,
			salon.State,
			salon.Zip,
			salon.MinServiceCharge,
			salon.MaxServiceCharge,
			pq.Array(salon.WorkingDays),
			salon.StartTime,
			salon.EndTime,
			salon.BreakStartTime,
			salon.BreakEndTime,
			salon.SlotDurationMinutes,
			salon.MaxBookingPerSlot,
			salon.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&salon.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return salon, nil
}

// GetByID получает салон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumns...).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	salon, err := scanSalon(row)
	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	return salon, nil
}

// GetByOwnerID получает все салоны владельца
func (r *Repository) GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumns...).
		From("salons").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSalons(rows)
}

// List получает список салонов с фильтрацией
func (r *Repository) List(ctx context.Context, filter domain.SalonListFilter) ([]*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(salonColumns...).
		From("salons").
		OrderBy("city ASC, name ASC")

	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSalons(rows)
}

// Update обновляет салон и его конфигурацию расписания
func (r *Repository) Update(ctx context.Context, id int64, salon *domain.Salon) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salons").
		Set("name", salon.Name).
		Set("address", salon.Address).
		Set("city", salon.City).
		Set("state", salon.State).
		Set("zip", salon.Zip).
		Set("min_service_charge", salon.MinServiceCharge).
		Set("max_service_charge", salon.MaxServiceCharge).
		Set("working_days", pq.Array(salon.WorkingDays)).
		Set("start_time", salon.StartTime).
		Set("end_time", salon.EndTime).
		Set("break_start_time", salon.BreakStartTime).
		Set("break_end_time", salon.BreakEndTime).
		Set("slot_duration_minutes", salon.SlotDurationMinutes).
		Set("max_booking_per_slot", salon.MaxBookingPerSlot).
		Set("is_active", salon.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	salon.ID = id
	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return salon, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSalon(row rowScanner) (*domain.Salon, error) {
	var salon domain.Salon
	var breakStart, breakEnd sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&salon.ID,
		&salon.OwnerID,
		&salon.Name,
		&salon.Address,
		&salon.City,
		&salon.State,
		&salon.Zip,
		&salon.MinServiceCharge,
		&salon.MaxServiceCharge,
		pq.Array(&salon.WorkingDays),
		&salon.StartTime,
		&salon.EndTime,
		&breakStart,
		&breakEnd,
		&salon.SlotDurationMinutes,
		&salon.MaxBookingPerSlot,
		&salon.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if breakStart.Valid && breakEnd.Valid {
		start, err := types.NewTimeStringFromString(breakStart.String)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(breakEnd.String)
		if err != nil {
			return nil, err
		}
		salon.BreakStartTime = &start
		salon.BreakEndTime = &end
	}

	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return &salon, nil
}

func scanSalons(rows *sql.Rows) ([]*domain.Salon, error) {
	salons := make([]*domain.Salon, 0)

	for rows.Next() {
		salon, err := scanSalon(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSalons - scan row: %v", ErrScanRow, err)
		}
		salons = append(salons, salon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSalons - rows error: %v", ErrScanRow, err)
	}

	return salons, nil
}
