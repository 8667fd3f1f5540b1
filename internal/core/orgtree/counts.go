package orgtree

// WithEmployeeCounts はツリーを走査し、各ノードに従業員数の集計値を付与した
// 新しいツリーを返します。入力は変更しません。
//
// 役職のカウントは割り当てられた従業員参照の数、部署のカウントは配下の役職の
// 合計、エリアのカウントは配下の部署の合計です。カウントは常に再計算され、
// 入力に設定済みの値は無視されます。
func WithEmployeeCounts(c *Company) *Company {
	if c == nil {
		return nil
	}

	out := *c
	out.Areas = make([]Area, len(c.Areas))

	for i, a := range c.Areas {
		outArea := a
		outArea.Departments = make([]Department, len(a.Departments))
		areaCount := 0

		for j, d := range a.Departments {
			outDept := d
			outDept.Positions = make([]Position, len(d.Positions))
			deptCount := 0

			for k, p := range d.Positions {
				outPos := p
				outPos.EmployeeCount = len(p.Employees)
				deptCount += outPos.EmployeeCount
				outDept.Positions[k] = outPos
			}

			outDept.EmployeeCount = deptCount
			areaCount += deptCount
			outArea.Departments[j] = outDept
		}

		outArea.EmployeeCount = areaCount
		out.Areas[i] = outArea
	}

	return &out
}
