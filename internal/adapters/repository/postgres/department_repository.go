package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/hr-structure/internal/core/department"
	pgdb "github.com/ogurasousui/hr-structure/internal/platform/db/postgres"
)

// DepartmentRepository は PostgreSQL を利用した部署永続化の実装です。
type DepartmentRepository struct {
	pool pgdb.Queryer
}

// NewDepartmentRepository は DepartmentRepository を生成します。
func NewDepartmentRepository(pool pgdb.Queryer) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

// Create は部署を新規作成します。
func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) (*department.Department, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO departments (name, description, area_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, name, description, area_id, created_at, updated_at
    `, d.Name, d.Description, d.AreaID, d.CreatedAt, d.UpdatedAt)

	created, err := scanDepartment(row)
	if err != nil {
		return nil, translateDepartmentPgError(err)
	}
	return created, nil
}

// Update は部署情報を更新します。
func (r *DepartmentRepository) Update(ctx context.Context, d *department.Department) (*department.Department, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE departments
           SET name = $1,
               description = $2,
               updated_at = $3
         WHERE id = $4
        RETURNING id, name, description, area_id, created_at, updated_at
    `, d.Name, d.Description, d.UpdatedAt, d.ID)

	updated, err := scanDepartment(row)
	if err != nil {
		return nil, translateDepartmentPgError(err)
	}
	return updated, nil
}

// Delete は部署を削除します。配下の役職は FK のカスケードで削除されます。
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// FindByID は ID で部署を取得します。
func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*department.Department, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, description, area_id, created_at, updated_at
          FROM departments
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanDepartment(row)
}

// List は部署の一覧と総件数を取得します。
func (r *DepartmentRepository) List(ctx context.Context, filter department.ListDepartmentsFilter) ([]*department.Department, int, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	args := make([]any, 0, 4)
	whereClause := ""
	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		whereClause = appendCondition(whereClause, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.AreaID != nil {
		args = append(args, *filter.AreaID)
		whereClause = appendCondition(whereClause, "area_id = $"+strconv.Itoa(len(args)))
	}

	var total int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM departments`+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Page.PageSize)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Page.Offset)

	// OrderBy と Order は service 層でホワイトリスト検証済み。
	query := `
        SELECT id, name, description, area_id, created_at, updated_at
          FROM departments` + whereClause + `
         ORDER BY ` + filter.Page.OrderBy + ` ` + string(filter.Page.Order) + `
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var departments []*department.Department
	for rows.Next() {
		found, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, found)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

func scanDepartment(row pgx.Row) (*department.Department, error) {
	var (
		id                   int64
		name                 string
		description          string
		areaID               int64
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &description, &areaID, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, err
	}

	return &department.Department{
		ID:          id,
		Name:        name,
		Description: description,
		AreaID:      areaID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func translateDepartmentPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == foreignKeyViolationCode {
			return department.ErrAreaNotFound
		}
	}
	return err
}
