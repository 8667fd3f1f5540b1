package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	"github.com/ogurasousui/hr-structure/internal/core/orgtree"
	pgdb "github.com/ogurasousui/hr-structure/internal/platform/db/postgres"
)

// TreeRepository は組織ツリー全体の読み込みを担う実装です。
type TreeRepository struct {
	pool pgdb.Queryer
}

// NewTreeRepository は TreeRepository を生成します。
func NewTreeRepository(pool pgdb.Queryer) *TreeRepository {
	return &TreeRepository{pool: pool}
}

// LoadCompanyTree は企業を頂点とした組織ツリーを一括で読み込みます。
// 各階層を 1 クエリずつ取得し、親 ID ごとに束ねてから下位層から組み立てます。
// 従業員数の集計は呼び出し側 (orgtree パッケージ) が行います。
func (r *TreeRepository) LoadCompanyTree(ctx context.Context, companyID int64) (*orgtree.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	root, err := r.loadCompanyNode(ctx, exec, companyID)
	if err != nil {
		return nil, err
	}

	areas, err := r.loadAreaNodes(ctx, exec, companyID)
	if err != nil {
		return nil, err
	}

	departmentsByArea, err := r.loadDepartmentNodes(ctx, exec, companyID)
	if err != nil {
		return nil, err
	}

	positionsByDepartment, err := r.loadPositionNodes(ctx, exec, companyID)
	if err != nil {
		return nil, err
	}

	employeesByPosition, err := r.loadEmployeeRefs(ctx, exec, companyID)
	if err != nil {
		return nil, err
	}

	for i := range areas {
		a := &areas[i]
		a.Departments = departmentsByArea[a.ID]
		for j := range a.Departments {
			d := &a.Departments[j]
			d.Positions = positionsByDepartment[d.ID]
			for k := range d.Positions {
				p := &d.Positions[k]
				p.Employees = employeesByPosition[p.ID]
			}
		}
	}

	root.Areas = areas
	return root, nil
}

func (r *TreeRepository) loadCompanyNode(ctx context.Context, exec pgdb.Queryer, companyID int64) (*orgtree.Company, error) {
	row := exec.QueryRow(ctx, `
        SELECT id, name, address, email, phone, industry
          FROM companies
         WHERE id = $1
         LIMIT 1
    `, companyID)

	var (
		node     orgtree.Company
		industry sql.NullString
	)
	if err := row.Scan(&node.ID, &node.Name, &node.Address, &node.Email, &node.Phone, &industry); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, err
	}
	if industry.Valid {
		value := industry.String
		node.Industry = &value
	}
	return &node, nil
}

func (r *TreeRepository) loadAreaNodes(ctx context.Context, exec pgdb.Queryer, companyID int64) ([]orgtree.Area, error) {
	rows, err := exec.Query(ctx, `
        SELECT id, name, description, company_id
          FROM areas
         WHERE company_id = $1
         ORDER BY id ASC
    `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []orgtree.Area
	for rows.Next() {
		var node orgtree.Area
		if err := rows.Scan(&node.ID, &node.Name, &node.Description, &node.CompanyID); err != nil {
			return nil, err
		}
		areas = append(areas, node)
	}
	return areas, rows.Err()
}

func (r *TreeRepository) loadDepartmentNodes(ctx context.Context, exec pgdb.Queryer, companyID int64) (map[int64][]orgtree.Department, error) {
	rows, err := exec.Query(ctx, `
        SELECT d.id, d.name, d.description, d.area_id
          FROM departments d
          JOIN areas a ON a.id = d.area_id
         WHERE a.company_id = $1
         ORDER BY d.id ASC
    `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byArea := make(map[int64][]orgtree.Department)
	for rows.Next() {
		var node orgtree.Department
		if err := rows.Scan(&node.ID, &node.Name, &node.Description, &node.AreaID); err != nil {
			return nil, err
		}
		byArea[node.AreaID] = append(byArea[node.AreaID], node)
	}
	return byArea, rows.Err()
}

func (r *TreeRepository) loadPositionNodes(ctx context.Context, exec pgdb.Queryer, companyID int64) (map[int64][]orgtree.Position, error) {
	rows, err := exec.Query(ctx, `
        SELECT p.id, p.name, p.description, p.department_id
          FROM positions p
          JOIN departments d ON d.id = p.department_id
          JOIN areas a ON a.id = d.area_id
         WHERE a.company_id = $1
         ORDER BY p.id ASC
    `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byDepartment := make(map[int64][]orgtree.Position)
	for rows.Next() {
		var node orgtree.Position
		if err := rows.Scan(&node.ID, &node.Name, &node.Description, &node.DepartmentID); err != nil {
			return nil, err
		}
		byDepartment[node.DepartmentID] = append(byDepartment[node.DepartmentID], node)
	}
	return byDepartment, rows.Err()
}

func (r *TreeRepository) loadEmployeeRefs(ctx context.Context, exec pgdb.Queryer, companyID int64) (map[int64][]orgtree.EmployeeRef, error) {
	rows, err := exec.Query(ctx, `
        SELECT e.id, e.name, e.position_id
          FROM employees e
          JOIN positions p ON p.id = e.position_id
          JOIN departments d ON d.id = p.department_id
          JOIN areas a ON a.id = d.area_id
         WHERE a.company_id = $1
         ORDER BY e.id ASC
    `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byPosition := make(map[int64][]orgtree.EmployeeRef)
	for rows.Next() {
		var (
			ref        orgtree.EmployeeRef
			positionID int64
		)
		if err := rows.Scan(&ref.ID, &ref.Name, &positionID); err != nil {
			return nil, err
		}
		byPosition[positionID] = append(byPosition[positionID], ref)
	}
	return byPosition, rows.Err()
}
