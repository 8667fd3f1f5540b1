package httpapi

import (
	"time"

	"github.com/ogurasousui/hr-structure/internal/core/area"
	"github.com/ogurasousui/hr-structure/internal/core/company"
	"github.com/ogurasousui/hr-structure/internal/core/department"
	"github.com/ogurasousui/hr-structure/internal/core/orgtree"
	"github.com/ogurasousui/hr-structure/internal/core/position"
)

type companyView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Industry  *string   `json:"industry"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newCompanyView(c *company.Company) companyView {
	return companyView{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		Industry:  c.Industry,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func newCompanyViews(companies []*company.Company) []companyView {
	views := make([]companyView, 0, len(companies))
	for _, c := range companies {
		views = append(views, newCompanyView(c))
	}
	return views
}

type areaView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CompanyID   int64     `json:"companyId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newAreaView(a *area.Area) areaView {
	return areaView{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CompanyID:   a.CompanyID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func newAreaViews(areas []*area.Area) []areaView {
	views := make([]areaView, 0, len(areas))
	for _, a := range areas {
		views = append(views, newAreaView(a))
	}
	return views
}

type departmentView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AreaID      int64     `json:"areaId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newDepartmentView(d *department.Department) departmentView {
	return departmentView{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		AreaID:      d.AreaID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func newDepartmentViews(departments []*department.Department) []departmentView {
	views := make([]departmentView, 0, len(departments))
	for _, d := range departments {
		views = append(views, newDepartmentView(d))
	}
	return views
}

type positionView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DepartmentID int64     `json:"departmentId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newPositionView(p *position.Position) positionView {
	return positionView{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		DepartmentID: p.DepartmentID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func newPositionViews(positions []*position.Position) []positionView {
	views := make([]positionView, 0, len(positions))
	for _, p := range positions {
		views = append(views, newPositionView(p))
	}
	return views
}

// companyTreeView は企業詳細で返す組織ツリーです。各ノードに従業員数を含みます。
type companyTreeView struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Industry *string        `json:"industry"`
	Areas    []areaTreeView `json:"areas"`
}

type areaTreeView struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	EmployeeCount int                  `json:"employeeCount"`
	Departments   []departmentTreeView `json:"departments"`
}

type departmentTreeView struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	EmployeeCount int                `json:"employeeCount"`
	Positions     []positionTreeView `json:"positions"`
}

type positionTreeView struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	EmployeeCount int               `json:"employeeCount"`
	Employees     []employeeRefView `json:"employees"`
}

type employeeRefView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newCompanyTreeView(tree *orgtree.Company) companyTreeView {
	view := companyTreeView{
		ID:       tree.ID,
		Name:     tree.Name,
		Address:  tree.Address,
		Email:    tree.Email,
		Phone:    tree.Phone,
		Industry: tree.Industry,
		Areas:    make([]areaTreeView, 0, len(tree.Areas)),
	}
	for _, a := range tree.Areas {
		areaNode := areaTreeView{
			ID:            a.ID,
			Name:          a.Name,
			Description:   a.Description,
			EmployeeCount: a.EmployeeCount,
			Departments:   make([]departmentTreeView, 0, len(a.Departments)),
		}
		for _, d := range a.Departments {
			departmentNode := departmentTreeView{
				ID:            d.ID,
				Name:          d.Name,
				Description:   d.Description,
				EmployeeCount: d.EmployeeCount,
				Positions:     make([]positionTreeView, 0, len(d.Positions)),
			}
			for _, p := range d.Positions {
				positionNode := positionTreeView{
					ID:            p.ID,
					Name:          p.Name,
					Description:   p.Description,
					EmployeeCount: p.EmployeeCount,
					Employees:     make([]employeeRefView, 0, len(p.Employees)),
				}
				for _, e := range p.Employees {
					positionNode.Employees = append(positionNode.Employees, employeeRefView{ID: e.ID, Name: e.Name})
				}
				departmentNode.Positions = append(departmentNode.Positions, positionNode)
			}
			areaNode.Departments = append(areaNode.Departments, departmentNode)
		}
		view.Areas = append(view.Areas, areaNode)
	}
	return view
}
