package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/hr-structure/internal/core/area"
	pgdb "github.com/ogurasousui/hr-structure/internal/platform/db/postgres"
)

const foreignKeyViolationCode = "23503"

// AreaRepository は PostgreSQL を利用したエリア永続化の実装です。
type AreaRepository struct {
	pool pgdb.Queryer
}

// NewAreaRepository は AreaRepository を生成します。
func NewAreaRepository(pool pgdb.Queryer) *AreaRepository {
	return &AreaRepository{pool: pool}
}

// Create はエリアを新規作成します。
func (r *AreaRepository) Create(ctx context.Context, a *area.Area) (*area.Area, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO areas (name, description, company_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, name, description, company_id, created_at, updated_at
    `, a.Name, a.Description, a.CompanyID, a.CreatedAt, a.UpdatedAt)

	created, err := scanArea(row)
	if err != nil {
		return nil, translateAreaPgError(err)
	}
	return created, nil
}

// Update はエリア情報を更新します。
func (r *AreaRepository) Update(ctx context.Context, a *area.Area) (*area.Area, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE areas
           SET name = $1,
               description = $2,
               updated_at = $3
         WHERE id = $4
        RETURNING id, name, description, company_id, created_at, updated_at
    `, a.Name, a.Description, a.UpdatedAt, a.ID)

	updated, err := scanArea(row)
	if err != nil {
		return nil, translateAreaPgError(err)
	}
	return updated, nil
}

// Delete はエリアを削除します。配下の部署・役職は FK のカスケードで削除されます。
func (r *AreaRepository) Delete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return area.ErrAreaNotFound
	}
	return nil
}

// FindByID は ID でエリアを取得します。
func (r *AreaRepository) FindByID(ctx context.Context, id int64) (*area.Area, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, description, company_id, created_at, updated_at
          FROM areas
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanArea(row)
}

// List はエリアの一覧と総件数を取得します。
func (r *AreaRepository) List(ctx context.Context, filter area.ListAreasFilter) ([]*area.Area, int, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	args := make([]any, 0, 4)
	whereClause := ""
	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		whereClause = appendCondition(whereClause, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		whereClause = appendCondition(whereClause, "company_id = $"+strconv.Itoa(len(args)))
	}

	var total int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM areas`+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Page.PageSize)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Page.Offset)

	// OrderBy と Order は service 層でホワイトリスト検証済み。
	query := `
        SELECT id, name, description, company_id, created_at, updated_at
          FROM areas` + whereClause + `
         ORDER BY ` + filter.Page.OrderBy + ` ` + string(filter.Page.Order) + `
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var areas []*area.Area
	for rows.Next() {
		found, err := scanArea(rows)
		if err != nil {
			return nil, 0, err
		}
		areas = append(areas, found)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return areas, total, nil
}

func scanArea(row pgx.Row) (*area.Area, error) {
	var (
		id                   int64
		name                 string
		description          string
		companyID            int64
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &description, &companyID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, area.ErrAreaNotFound
		}
		return nil, err
	}

	return &area.Area{
		ID:          id,
		Name:        name,
		Description: description,
		CompanyID:   companyID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func translateAreaPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == foreignKeyViolationCode {
			return area.ErrCompanyNotFound
		}
	}
	return err
}

func appendCondition(whereClause, condition string) string {
	if whereClause == "" {
		return " WHERE " + condition
	}
	return whereClause + " AND " + condition
}
