package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	"github.com/ogurasousui/hr-structure/internal/core/listing"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type stubCompanyRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubCompanyRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanCompany_Success(t *testing.T) {
	t.Parallel()

	industry := "IT"
	createdAt := time.Now().UTC()
	updatedAt := createdAt.Add(time.Minute)

	row := stubCompanyRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 8 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*int64)) = 1
		*(dest[1].(*string)) = "Acme Corp"
		*(dest[2].(*string)) = "Tokyo"
		*(dest[3].(*string)) = "info@acme.example"
		*(dest[4].(*string)) = "03-0000-0000"

		industryDest := dest[5].(*sql.NullString)
		industryDest.String = industry
		industryDest.Valid = true

		*(dest[6].(*time.Time)) = createdAt
		*(dest[7].(*time.Time)) = updatedAt
		return nil
	}}

	got, err := scanCompany(row)
	if err != nil {
		t.Fatalf("scanCompany returned error: %v", err)
	}

	if got.ID != 1 || got.Name != "Acme Corp" {
		t.Fatalf("unexpected company: %+v", got)
	}
	if got.Industry == nil || *got.Industry != industry {
		t.Fatalf("expected industry %s, got %+v", industry, got.Industry)
	}
}

func TestScanCompany_NullIndustry(t *testing.T) {
	t.Parallel()

	row := stubCompanyRow{scanFn: func(dest ...interface{}) error {
		*(dest[0].(*int64)) = 2
		*(dest[1].(*string)) = "Beta"
		*(dest[2].(*string)) = "Osaka"
		*(dest[3].(*string)) = "info@beta.example"
		*(dest[4].(*string)) = "06-0000-0000"
		*(dest[6].(*time.Time)) = time.Now().UTC()
		*(dest[7].(*time.Time)) = time.Now().UTC()
		return nil
	}}

	got, err := scanCompany(row)
	if err != nil {
		t.Fatalf("scanCompany returned error: %v", err)
	}
	if got.Industry != nil {
		t.Fatalf("expected nil industry, got %+v", got.Industry)
	}
}

func TestScanCompany_NoRows(t *testing.T) {
	t.Parallel()

	row := stubCompanyRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanCompany(row)
	if !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCompanyRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM companies WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := repo.Delete(context.Background(), 99); !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCompanyRepository_List_WithNameFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM companies WHERE name ILIKE $1`)).
		WithArgs("%Acme%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	pageQuery := regexp.QuoteMeta(`
        SELECT id, name, address, email, phone, industry, created_at, updated_at
          FROM companies WHERE name ILIKE $1
         ORDER BY id DESC
         LIMIT $2
        OFFSET $3
    `)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "name", "address", "email", "phone", "industry", "created_at", "updated_at"}).
		AddRow(int64(2), "Acme East", "Tokyo", "east@acme.example", "03-0000-0001", nil, now, now).
		AddRow(int64(1), "Acme West", "Osaka", "west@acme.example", "06-0000-0001", nil, now, now)

	mock.ExpectQuery(pageQuery).
		WithArgs("%Acme%", 2, 0).
		WillReturnRows(rows)

	name := "Acme"
	companies, total, err := repo.List(context.Background(), company.ListCompaniesFilter{
		Page: listing.Params{OrderBy: "id", Order: listing.OrderDesc, PageSize: 2, Offset: 0},
		Name: &name,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(companies) != 2 {
		t.Fatalf("expected 2 companies, got %d", len(companies))
	}
	if companies[0].ID != 2 || companies[1].ID != 1 {
		t.Fatalf("unexpected ordering: %+v", companies)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
