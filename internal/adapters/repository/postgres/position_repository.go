package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/hr-structure/internal/core/position"
	pgdb "github.com/ogurasousui/hr-structure/internal/platform/db/postgres"
)

// PositionRepository は PostgreSQL を利用した役職永続化の実装です。
type PositionRepository struct {
	pool pgdb.Queryer
}

// NewPositionRepository は PositionRepository を生成します。
func NewPositionRepository(pool pgdb.Queryer) *PositionRepository {
	return &PositionRepository{pool: pool}
}

// Create は役職を新規作成します。
func (r *PositionRepository) Create(ctx context.Context, p *position.Position) (*position.Position, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO positions (name, description, department_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, name, description, department_id, created_at, updated_at
    `, p.Name, p.Description, p.DepartmentID, p.CreatedAt, p.UpdatedAt)

	created, err := scanPosition(row)
	if err != nil {
		return nil, translatePositionPgError(err)
	}
	return created, nil
}

// Update は役職情報を更新します。
func (r *PositionRepository) Update(ctx context.Context, p *position.Position) (*position.Position, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE positions
           SET name = $1,
               description = $2,
               updated_at = $3
         WHERE id = $4
        RETURNING id, name, description, department_id, created_at, updated_at
    `, p.Name, p.Description, p.UpdatedAt, p.ID)

	updated, err := scanPosition(row)
	if err != nil {
		return nil, translatePositionPgError(err)
	}
	return updated, nil
}

// Delete は役職を削除します。
func (r *PositionRepository) Delete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}
	return nil
}

// FindByID は ID で役職を取得します。
func (r *PositionRepository) FindByID(ctx context.Context, id int64) (*position.Position, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, description, department_id, created_at, updated_at
          FROM positions
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanPosition(row)
}

// List は役職の一覧と総件数を取得します。
func (r *PositionRepository) List(ctx context.Context, filter position.ListPositionsFilter) ([]*position.Position, int, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	args := make([]any, 0, 4)
	whereClause := ""
	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		whereClause = appendCondition(whereClause, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		whereClause = appendCondition(whereClause, "department_id = $"+strconv.Itoa(len(args)))
	}

	var total int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM positions`+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Page.PageSize)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Page.Offset)

	// OrderBy と Order は service 層でホワイトリスト検証済み。
	query := `
        SELECT id, name, description, department_id, created_at, updated_at
          FROM positions` + whereClause + `
         ORDER BY ` + filter.Page.OrderBy + ` ` + string(filter.Page.Order) + `
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var positions []*position.Position
	for rows.Next() {
		found, err := scanPosition(rows)
		if err != nil {
			return nil, 0, err
		}
		positions = append(positions, found)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return positions, total, nil
}

func scanPosition(row pgx.Row) (*position.Position, error) {
	var (
		id                   int64
		name                 string
		description          string
		departmentID         int64
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &description, &departmentID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, position.ErrPositionNotFound
		}
		return nil, err
	}

	return &position.Position{
		ID:           id,
		Name:         name,
		Description:  description,
		DepartmentID: departmentID,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func translatePositionPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == foreignKeyViolationCode {
			return position.ErrDepartmentNotFound
		}
	}
	return err
}
