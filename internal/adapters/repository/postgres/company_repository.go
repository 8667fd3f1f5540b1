package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	pgdb "github.com/ogurasousui/hr-structure/internal/platform/db/postgres"
)

// CompanyRepository は PostgreSQL を利用した企業永続化の実装です。
type CompanyRepository struct {
	pool pgdb.Queryer
}

// NewCompanyRepository は CompanyRepository を生成します。
func NewCompanyRepository(pool pgdb.Queryer) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// Create は企業を新規作成します。
func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO companies (name, address, email, phone, industry, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, name, address, email, phone, industry, created_at, updated_at
    `, c.Name, c.Address, c.Email, c.Phone, nullableString(c.Industry), c.CreatedAt, c.UpdatedAt)

	return scanCompany(row)
}

// Update は企業情報を更新します。
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE companies
           SET name = $1,
               address = $2,
               email = $3,
               phone = $4,
               industry = $5,
               updated_at = $6
         WHERE id = $7
        RETURNING id, name, address, email, phone, industry, created_at, updated_at
    `, c.Name, c.Address, c.Email, c.Phone, nullableString(c.Industry), c.UpdatedAt, c.ID)

	return scanCompany(row)
}

// Delete は企業を削除します。配下のエリア以下は FK のカスケードで削除されます。
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}

// FindByID は ID で企業を取得します。
func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, name, address, email, phone, industry, created_at, updated_at
          FROM companies
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanCompany(row)
}

// List は企業の一覧と総件数を取得します。
func (r *CompanyRepository) List(ctx context.Context, filter company.ListCompaniesFilter) ([]*company.Company, int, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	args := make([]any, 0, 3)
	whereClause := ""
	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		whereClause = " WHERE name ILIKE $1"
	}

	var total int
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM companies`+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Page.PageSize)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Page.Offset)

	// OrderBy と Order は service 層でホワイトリスト検証済み。
	query := `
        SELECT id, name, address, email, phone, industry, created_at, updated_at
          FROM companies` + whereClause + `
         ORDER BY ` + filter.Page.OrderBy + ` ` + string(filter.Page.Order) + `
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []*company.Company
	for rows.Next() {
		found, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, found)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func scanCompany(row pgx.Row) (*company.Company, error) {
	var (
		id                   int64
		name                 string
		address              string
		email                string
		phone                string
		industry             sql.NullString
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &address, &email, &phone, &industry, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, err
	}

	var industryPtr *string
	if industry.Valid {
		value := industry.String
		industryPtr = &value
	}

	return &company.Company{
		ID:        id,
		Name:      name,
		Address:   address,
		Email:     email,
		Phone:     phone,
		Industry:  industryPtr,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
