package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/hr-structure/internal/core/area"
	"github.com/ogurasousui/hr-structure/internal/core/department"
	"github.com/ogurasousui/hr-structure/internal/core/listing"
	"github.com/ogurasousui/hr-structure/internal/core/position"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type stubAreaRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubAreaRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanArea_NoRows(t *testing.T) {
	t.Parallel()

	row := stubAreaRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanArea(row)
	if !errors.Is(err, area.ErrAreaNotFound) {
		t.Fatalf("expected ErrAreaNotFound, got %v", err)
	}
}

func TestTranslateParentPgErrors(t *testing.T) {
	t.Parallel()

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}
	if !errors.Is(translateAreaPgError(fkErr), area.ErrCompanyNotFound) {
		t.Fatalf("expected fk violation to map to area.ErrCompanyNotFound")
	}
	if !errors.Is(translateDepartmentPgError(fkErr), department.ErrAreaNotFound) {
		t.Fatalf("expected fk violation to map to department.ErrAreaNotFound")
	}
	if !errors.Is(translatePositionPgError(fkErr), position.ErrDepartmentNotFound) {
		t.Fatalf("expected fk violation to map to position.ErrDepartmentNotFound")
	}

	other := errors.New("other")
	if translateAreaPgError(other) != other {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestAreaRepository_Create_ParentMissing(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAreaRepository(mock)
	now := time.Now().UTC()

	query := regexp.QuoteMeta(`
        INSERT INTO areas (name, description, company_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, name, description, company_id, created_at, updated_at
    `)

	mock.ExpectQuery(query).
		WithArgs("Kanto", "East region", int64(42), now, now).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

	_, err = repo.Create(context.Background(), &area.Area{
		Name:        "Kanto",
		Description: "East region",
		CompanyID:   42,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if !errors.Is(err, area.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAreaRepository_List_WithCompanyFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAreaRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM areas WHERE name ILIKE $1 AND company_id = $2`)).
		WithArgs("%Kan%", int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	pageQuery := regexp.QuoteMeta(`
        SELECT id, name, description, company_id, created_at, updated_at
          FROM areas WHERE name ILIKE $1 AND company_id = $2
         ORDER BY id ASC
         LIMIT $3
        OFFSET $4
    `)

	now := time.Now().UTC()
	mock.ExpectQuery(pageQuery).
		WithArgs("%Kan%", int64(1), 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "company_id", "created_at", "updated_at"}).
			AddRow(int64(7), "Kanto", "East region", int64(1), now, now))

	name := "Kan"
	companyID := int64(1)
	areas, total, err := repo.List(context.Background(), area.ListAreasFilter{
		Page:      listing.Params{OrderBy: "id", Order: listing.OrderAsc, PageSize: 10, Offset: 0},
		Name:      &name,
		CompanyID: &companyID,
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if total != 1 || len(areas) != 1 {
		t.Fatalf("expected 1 area, got total=%d len=%d", total, len(areas))
	}
	if areas[0].ID != 7 || areas[0].CompanyID != 1 {
		t.Fatalf("unexpected area: %+v", areas[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
