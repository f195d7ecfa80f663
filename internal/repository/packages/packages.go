package packages

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"pickuppoint/internal/entities"
	"pickuppoint/internal/repository"
	"pickuppoint/internal/service/pickup"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const packageColumns = `id, tracking, customer_name, customer_phone, customer_email,
		courier_id, pickup_location_id, status, expected_at, archived_at,
		qr_code_path, signature_path, photo_path, notes, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error) {
	packageModifyModel := FromDomainModify(&packageModifyEntity)

	query := `INSERT INTO packages
		(tracking, customer_name, customer_phone, customer_email, courier_id,
		 pickup_location_id, status, expected_at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + packageColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		packageModifyModel.Tracking,
		packageModifyModel.CustomerName,
		packageModifyModel.CustomerPhone,
		packageModifyModel.CustomerEmail,
		packageModifyModel.CourierID,
		packageModifyModel.PickupLocationID,
		packageModifyModel.Status,
		packageModifyModel.ExpectedAt,
		packageModifyModel.Notes,
	)

	packageModel, err := scanPackage(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, pickup.ErrDuplicateTracking
		}
		return nil, fmt.Errorf("unexpected package repository create error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) Update(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error) {
	packageModifyModel := FromDomainModify(&packageModifyEntity)

	builder := qb.
		Update("packages")

	if packageModifyModel.Tracking != nil {
		builder = builder.Set("tracking", packageModifyModel.Tracking)
	}
	if packageModifyModel.CustomerName != nil {
		builder = builder.Set("customer_name", packageModifyModel.CustomerName)
	}
	if packageModifyModel.CustomerPhone != nil {
		builder = builder.Set("customer_phone", packageModifyModel.CustomerPhone)
	}
	if packageModifyModel.CustomerEmail != nil {
		builder = builder.Set("customer_email", packageModifyModel.CustomerEmail)
	}
	if packageModifyModel.CourierID != nil {
		builder = builder.Set("courier_id", packageModifyModel.CourierID)
	}
	if packageModifyModel.PickupLocationID != nil {
		builder = builder.Set("pickup_location_id", packageModifyModel.PickupLocationID)
	}
	if packageModifyModel.Status != nil {
		builder = builder.Set("status", packageModifyModel.Status)
	}
	if packageModifyModel.ExpectedAt != nil {
		builder = builder.Set("expected_at", packageModifyModel.ExpectedAt)
	}
	if packageModifyModel.ArchivedAt != nil {
		builder = builder.Set("archived_at", packageModifyModel.ArchivedAt)
	}
	if packageModifyModel.QrCodePath != nil {
		builder = builder.Set("qr_code_path", packageModifyModel.QrCodePath)
	}
	if packageModifyModel.SignaturePath != nil {
		builder = builder.Set("signature_path", packageModifyModel.SignaturePath)
	}
	if packageModifyModel.PhotoPath != nil {
		builder = builder.Set("photo_path", packageModifyModel.PhotoPath)
	}
	if packageModifyModel.Notes != nil {
		builder = builder.Set("notes", packageModifyModel.Notes)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": packageModifyModel.ID}).
		Suffix("RETURNING " + packageColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository update error: %w", err)
	}

	packageModel, err := scanPackage(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pickup.ErrPackageNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, pickup.ErrDuplicateTracking
		}

		return nil, fmt.Errorf("unexpected package repository update error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate takes a row lock on the package. Used to serialize
// sweep-driven and operator-driven transitions on the same package.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE id = $1
		FOR UPDATE`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByTracking(ctx context.Context, tracking string) (*entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE lower(tracking) = lower($1)`

	return r.getOne(ctx, query, tracking)
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM packages WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected package repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return pickup.ErrPackageNotFound
	}

	return nil
}

func (r *Repository) List(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error) {
	builder := qb.
		Select(packageColumns).
		From("packages").
		OrderBy("created_at DESC, id DESC")

	if !filter.IncludeArchived {
		builder = builder.Where(sq.Eq{"archived_at": nil})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.CourierID != nil {
		builder = builder.Where(sq.Eq{"courier_id": *filter.CourierID})
	}
	if filter.PickupLocationID != nil {
		builder = builder.Where(sq.Eq{"pickup_location_id": *filter.PickupLocationID})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.CreatedTo})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"tracking": pattern},
			sq.ILike{"customer_name": pattern},
			sq.ILike{"customer_phone": pattern},
			sq.ILike{"customer_email": pattern},
		})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository list error: %w", err)
	}
	defer rows.Close()

	packageModels := make([]PackageDB, 0, 8)
	for rows.Next() {
		packageModel, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected package repository list error: %w", err)
		}
		packageModels = append(packageModels, *packageModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository list error: %w", err)
	}

	return ToDomainList(packageModels), nil
}

// ListInStorage returns non-archived packages currently sitting in storage,
// the candidate set for the expiration sweep.
func (r *Repository) ListInStorage(ctx context.Context) ([]entities.Package, error) {
	status := entities.PackageInGiacenza
	return r.List(ctx, entities.PackageFilter{Status: &status})
}

// ArchiveDelivered stamps archived_at on picked-up packages last touched
// before the cutoff and returns the affected ids.
func (r *Repository) ArchiveDelivered(ctx context.Context, cutoff time.Time) ([]int64, error) {
	query := `
		UPDATE packages
		SET archived_at = NOW()
		WHERE status = 'ritirato'
		  AND archived_at IS NULL
		  AND updated_at < $1
		RETURNING id
	`

	rows, err := r.querier.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("unexpected package repository archive error: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected package repository archive scan error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected package repository archive rows error: %w", err)
	}

	return ids, nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Package, error) {
	packageModel, err := scanPackage(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pickup.ErrPackageNotFound
		}

		return nil, fmt.Errorf("unexpected package repository get error: %w", err)
	}

	return ToDomain(packageModel), nil
}

func scanPackage(row pgx.Row) (*PackageDB, error) {
	var packageModel PackageDB
	err := row.Scan(
		&packageModel.ID,
		&packageModel.Tracking,
		&packageModel.CustomerName,
		&packageModel.CustomerPhone,
		&packageModel.CustomerEmail,
		&packageModel.CourierID,
		&packageModel.PickupLocationID,
		&packageModel.Status,
		&packageModel.ExpectedAt,
		&packageModel.ArchivedAt,
		&packageModel.QrCodePath,
		&packageModel.SignaturePath,
		&packageModel.PhotoPath,
		&packageModel.Notes,
		&packageModel.CreatedAt,
		&packageModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &packageModel, nil
}
