package wizard

// Step はウィザードの進行ステップです。
type Step int

const (
	StepCompanyInfo Step = iota + 1
	StepAreas
	StepDepartments
	StepPositions
	StepReview
)

// String はステップ名を返します。
func (s Step) String() string {
	switch s {
	case StepCompanyInfo:
		return "company_info"
	case StepAreas:
		return "areas"
	case StepDepartments:
		return "departments"
	case StepPositions:
		return "positions"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// CompanyDraft は編集中の企業情報です。ID はサーバー採番後にのみ設定されます。
type CompanyDraft struct {
	ID       int64
	Name     string
	Address  string
	Email    string
	Phone    string
	Industry string
}

func (d CompanyDraft) info() CompanyInfo {
	return CompanyInfo{
		Name:     d.Name,
		Address:  d.Address,
		Email:    d.Email,
		Phone:    d.Phone,
		Industry: d.Industry,
	}
}

// AreaDraft は編集中のエリアノードです。
// TempID がローカル状態での唯一の検索キーで、ID はサーバー採番後にのみ設定されます。
type AreaDraft struct {
	TempID        string
	ID            int64
	Name          string
	Description   string
	Departments   []*DepartmentDraft
	EmployeeCount int
}

// DepartmentDraft は編集中の部署ノードです。
type DepartmentDraft struct {
	TempID        string
	ID            int64
	Name          string
	Description   string
	Positions     []*PositionDraft
	EmployeeCount int
}

// PositionDraft は編集中の役職ノードです。
type PositionDraft struct {
	TempID        string
	ID            int64
	Name          string
	Description   string
	EmployeeCount int
}

// Summary はレビューステップ向けのツリー集計です。
type Summary struct {
	AreaCount       int
	DepartmentCount int
	PositionCount   int
}
