package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/ogurasousui/hr-structure/internal/core/company"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestTreeRepository_LoadCompanyTree(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewTreeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, address, email, phone, industry
          FROM companies
         WHERE id = $1
         LIMIT 1
    `)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "address", "email", "phone", "industry"}).
			AddRow(int64(1), "Acme", "Tokyo", "info@acme.example", "03-0000-0000", nil))

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, description, company_id
          FROM areas
         WHERE company_id = $1
         ORDER BY id ASC
    `)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "company_id"}).
			AddRow(int64(10), "Kanto", "East", int64(1)).
			AddRow(int64(11), "Kansai", "West", int64(1)))

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT d.id, d.name, d.description, d.area_id
          FROM departments d
          JOIN areas a ON a.id = d.area_id
         WHERE a.company_id = $1
         ORDER BY d.id ASC
    `)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "area_id"}).
			AddRow(int64(100), "Sales", "", int64(10)).
			AddRow(int64(101), "Support", "", int64(11)))

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT p.id, p.name, p.description, p.department_id
          FROM positions p
          JOIN departments d ON d.id = p.department_id
          JOIN areas a ON a.id = d.area_id
         WHERE a.company_id = $1
         ORDER BY p.id ASC
    `)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "department_id"}).
			AddRow(int64(1000), "Manager", "", int64(100)).
			AddRow(int64(1001), "Staff", "", int64(100)))

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT e.id, e.name, e.position_id
          FROM employees e
          JOIN positions p ON p.id = e.position_id
          JOIN departments d ON d.id = p.department_id
          JOIN areas a ON a.id = d.area_id
         WHERE a.company_id = $1
         ORDER BY e.id ASC
    `)).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "position_id"}).
			AddRow(int64(5000), "Yamada Taro", int64(1000)).
			AddRow(int64(5001), "Sato Hanako", int64(1001)).
			AddRow(int64(5002), "Suzuki Ichiro", int64(1001)))

	tree, err := repo.LoadCompanyTree(context.Background(), 1)
	if err != nil {
		t.Fatalf("LoadCompanyTree returned error: %v", err)
	}

	if tree.ID != 1 || len(tree.Areas) != 2 {
		t.Fatalf("unexpected tree root: %+v", tree)
	}

	kanto := tree.Areas[0]
	if kanto.ID != 10 || len(kanto.Departments) != 1 {
		t.Fatalf("unexpected area: %+v", kanto)
	}

	sales := kanto.Departments[0]
	if sales.ID != 100 || len(sales.Positions) != 2 {
		t.Fatalf("unexpected department: %+v", sales)
	}
	if len(sales.Positions[0].Employees) != 1 || len(sales.Positions[1].Employees) != 2 {
		t.Fatalf("unexpected employee distribution: %+v", sales.Positions)
	}

	kansai := tree.Areas[1]
	if len(kansai.Departments) != 1 || len(kansai.Departments[0].Positions) != 0 {
		t.Fatalf("unexpected area: %+v", kansai)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTreeRepository_LoadCompanyTree_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewTreeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, name, address, email, phone, industry
          FROM companies
         WHERE id = $1
         LIMIT 1
    `)).
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "address", "email", "phone", "industry"}))

	_, err = repo.LoadCompanyTree(context.Background(), 99)
	if !errors.Is(err, company.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
