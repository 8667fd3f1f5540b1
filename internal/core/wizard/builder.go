// Package wizard は組織階層を構築する 5 ステップのウィザード状態機械を提供します。
//
// 新規作成モードではツリー全体をローカルバッファに積み上げ、レビューステップで
// 親→子の順に一括コミットします。編集モードでは各操作を即時にゲートウェイへ
// 反映し、成功した場合にのみローカル状態を更新します。どちらのモードでも
// ノードは tempID (文字列) だけで検索します。
package wizard

import (
	"context"
	"strings"
	"sync"
)

// Mode はウィザードの動作モードです。開始時に一度だけ決まります。
type Mode int

const (
	// ModeCreate は新規企業の構築モードです。
	ModeCreate Mode = iota
	// ModeEdit は既存企業の編集モードです。
	ModeEdit
)

// Builder はウィザードの状態機械です。単一セッション専用で、複数 goroutine
// からの同時操作は ErrOperationInFlight で拒否されます。
type Builder struct {
	mu sync.Mutex

	mode      Mode
	step      Step
	company   CompanyDraft
	areas     []*AreaDraft
	submitted bool

	selectedArea       string
	selectedDepartment string

	gw       Gateways
	strategy persister

	commitLog []CommitRecord
}

// NewBuilder は新規企業を構築するウィザードを開始します。
func NewBuilder(gw Gateways) *Builder {
	return &Builder{
		mode:     ModeCreate,
		step:     StepCompanyInfo,
		gw:       gw,
		strategy: &bufferedPersister{genTempID: newTempID},
	}
}

// NewEditBuilder は既存企業の組織ツリーを読み込み、編集モードのウィザードを
// 開始します。エントリはエリアステップです。
func NewEditBuilder(ctx context.Context, gw Gateways, companyID int64) (*Builder, error) {
	tree, err := gw.Companies.GetTree(ctx, companyID)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		mode:     ModeEdit,
		step:     StepAreas,
		gw:       gw,
		strategy: &immediatePersister{gw: gw},
	}

	industry := ""
	if tree.Industry != nil {
		industry = *tree.Industry
	}
	b.company = CompanyDraft{
		ID:       tree.ID,
		Name:     tree.Name,
		Address:  tree.Address,
		Email:    tree.Email,
		Phone:    tree.Phone,
		Industry: industry,
	}

	for _, a := range tree.Areas {
		areaDraft := &AreaDraft{
			TempID:        syncedTempID(kindArea, a.ID),
			ID:            a.ID,
			Name:          a.Name,
			Description:   a.Description,
			EmployeeCount: a.EmployeeCount,
		}
		for _, d := range a.Departments {
			deptDraft := &DepartmentDraft{
				TempID:        syncedTempID(kindDepartment, d.ID),
				ID:            d.ID,
				Name:          d.Name,
				Description:   d.Description,
				EmployeeCount: d.EmployeeCount,
			}
			for _, p := range d.Positions {
				deptDraft.Positions = append(deptDraft.Positions, &PositionDraft{
					TempID:        syncedTempID(kindPosition, p.ID),
					ID:            p.ID,
					Name:          p.Name,
					Description:   p.Description,
					EmployeeCount: p.EmployeeCount,
				})
			}
			areaDraft.Departments = append(areaDraft.Departments, deptDraft)
		}
		b.areas = append(b.areas, areaDraft)
	}

	return b, nil
}

// begin は操作の再入を防ぎます。進行中の操作がある間、後続の操作は
// ErrOperationInFlight で拒否されます。
func (b *Builder) begin() error {
	if !b.mu.TryLock() {
		return ErrOperationInFlight
	}
	return nil
}

// Mode はウィザードの動作モードを返します。
func (b *Builder) Mode() Mode {
	return b.mode
}

// IsEditMode は編集モードかどうかを返します。
func (b *Builder) IsEditMode() bool {
	return b.mode == ModeEdit
}

// Step は現在のステップを返します。
func (b *Builder) Step() Step {
	return b.step
}

// Company は企業情報ドラフトを返します。
func (b *Builder) Company() CompanyDraft {
	return b.company
}

// Areas は現在のエリアドラフト一覧を返します。返り値は読み取り専用として
// 扱ってください。変更はウィザードの操作メソッド経由で行います。
func (b *Builder) Areas() []*AreaDraft {
	return b.areas
}

// SelectedArea は部署・役職ステップのカーソルになっているエリアの tempID を返します。
func (b *Builder) SelectedArea() string {
	return b.selectedArea
}

// SelectedDepartment はカーソルになっている部署の tempID を返します。
func (b *Builder) SelectedDepartment() string {
	return b.selectedDepartment
}

// CommitLog は一括コミットで作成済みのノードの記録を返します。
// コミットが途中で失敗した場合、どこまで作成されたかの確認に使います。
func (b *Builder) CommitLog() []CommitRecord {
	log := make([]CommitRecord, len(b.commitLog))
	copy(log, b.commitLog)
	return log
}

// Summary はレビューステップ向けにツリーの集計を返します。
func (b *Builder) Summary() Summary {
	s := Summary{AreaCount: len(b.areas)}
	for _, a := range b.areas {
		s.DepartmentCount += len(a.Departments)
		for _, d := range a.Departments {
			s.PositionCount += len(d.Positions)
		}
	}
	return s
}

// SetCompanyInfo は企業情報ドラフトを差し替えます。検証は Next で行います。
func (b *Builder) SetCompanyInfo(info CompanyInfo) error {
	if err := b.begin(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	b.company.Name = info.Name
	b.company.Address = info.Address
	b.company.Email = info.Email
	b.company.Phone = info.Phone
	b.company.Industry = info.Industry
	return nil
}

// Next は現在のステップの完了条件を検証し、次のステップへ進みます。
// 検証またはゲートウェイ呼び出しが失敗した場合は現在のステップに留まります。
func (b *Builder) Next(ctx context.Context) error {
	if err := b.begin(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	switch b.step {
	case StepCompanyInfo:
		if hasEmpty(b.company.Name, b.company.Address, b.company.Email, b.company.Phone, b.company.Industry) {
			return ErrCompanyInfoIncomplete
		}
		if b.mode == ModeEdit {
			if err := b.strategy.updateCompany(ctx, &b.company); err != nil {
				return err
			}
		}
		b.step = StepAreas
	case StepAreas:
		if len(b.areas) == 0 {
			return ErrNoAreas
		}
		b.step = StepDepartments
	case StepDepartments:
		if b.totalDepartments() == 0 {
			return ErrNoDepartments
		}
		b.step = StepPositions
	case StepPositions:
		if b.totalPositions() == 0 {
			return ErrNoPositions
		}
		b.step = StepReview
	default:
		return ErrInvalidStep
	}

	return nil
}

// Back は 1 ステップ戻ります。コミット済みのリモート変更もローカルバッファも
// 破棄しません。先頭ステップではなにもしません。
func (b *Builder) Back() error {
	if err := b.begin(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.step > StepCompanyInfo {
		b.step--
	}
	return nil
}

// AddArea はエリアを追加します。編集モードでは作成 API の成功後に、
// 新規作成モードでは即座にローカルバッファへ追加されます。
func (b *Builder) AddArea(ctx context.Context, name, description string) (*AreaDraft, error) {
	if err := b.begin(); err != nil {
		return nil, err
	}
	defer b.mu.Unlock()

	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, ErrAreaFieldsRequired
	}

	draft, err := b.strategy.createArea(ctx, &b.company, name, description)
	if err != nil {
		return nil, err
	}

	b.areas = append(b.areas, draft)
	return draft, nil
}

// RemoveArea はエリアを削除します。編集モードでは削除 API の成功後にのみ
// ローカルから取り除きます。配下の部署・役職のカスケード削除はバックエンドの
// 責務です。
func (b *Builder) RemoveArea(ctx context.Context, tempID string) error {
	if err := b.begin(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	idx := -1
	for i, a := range b.areas {
		if a.TempID == tempID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownNode
	}

	if err := b.strategy.deleteArea(ctx, b.areas[idx]); err != nil {
		return err
	}

	b.areas = append(b.areas[:idx], b.areas[idx+1:]...)
	if b.selectedArea == tempID {
		b.selectedArea = ""
		b.selectedDepartment = ""
	}
	return nil
}

// SelectArea は部署・役職ステップのカーソルを切り替えます。
func (b *Builder) SelectArea(tempID string) error {
	if err := b.begin(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.findArea(tempID) == nil {
		return ErrUnknownNode
	}

	if b.selectedArea != tempID {
		b.selectedArea = tempID
		b.selectedDepartment = ""
	}
	return nil
}

// AddDepartment は選択中のエリアへ部署を追加します。
func (b *Builder) AddDepartment(ctx context.Context, name, description string) (*DepartmentDraft, error) {
	if err := b.begin(); err != nil {
		return nil, err
	}
	defer b.mu.Unlock()

	parent := b.findArea(b.selectedArea)
	if parent == nil {
		return nil, ErrNoAreaSelected
	}

	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, ErrDepartmentFieldsRequired
	}

	draft, err := b.strategy.createDepartment(ctx, parent, name, description)
	if err != nil {
		return nil, err
	}

	parent.Departments = append(parent.Departments, draft)
	return draft, nil
}

// RemoveDepartment は指定エリア配下の部署を削除します。
func (b *Builder) RemoveDepartment(ctx context.Context, areaTempID, deptTempID string) error {
	if err := b.begin(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	parent := b.findArea(areaTempID)
	if parent == nil {
		return ErrUnknownNode
	}

	idx := -1
	for i, d := range parent.Departments {
		if d.TempID == deptTempID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownNode
	}

	if err := b.strategy.deleteDepartment(ctx, parent.Departments[idx]); err != nil {
		return err
	}

	parent.Departments = append(parent.Departments[:idx], parent.Departments[idx+1:]...)
	if b.selectedDepartment == deptTempID {
		b.selectedDepartment = ""
	}
	return nil
}

// SelectDepartment は役職ステップのカーソルを切り替えます。
// 選択中のエリア配下の部署のみ指定できます。
func (b *Builder) SelectDepartment(tempID string) error {
	if err := b.begin(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	parent := b.findArea(b.selectedArea)
	if parent == nil {
		return ErrNoAreaSelected
	}

	for _, d := range parent.Departments {
		if d.TempID == tempID {
			b.selectedDepartment = tempID
			return nil
		}
	}
	return ErrUnknownNode
}

// AddPosition は選択中の部署へ役職を追加します。
func (b *Builder) AddPosition(ctx context.Context, name, description string) (*PositionDraft, error) {
	if err := b.begin(); err != nil {
		return nil, err
	}
	defer b.mu.Unlock()

	area := b.findArea(b.selectedArea)
	if area == nil {
		return nil, ErrNoAreaSelected
	}

	var parent *DepartmentDraft
	for _, d := range area.Departments {
		if d.TempID == b.selectedDepartment {
			parent = d
			break
		}
	}
	if parent == nil {
		return nil, ErrNoDepartmentSelected
	}

	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, ErrPositionFieldsRequired
	}

	draft, err := b.strategy.createPosition(ctx, parent, name, description)
	if err != nil {
		return nil, err
	}

	parent.Positions = append(parent.Positions, draft)
	return draft, nil
}

// RemovePosition は指定部署配下の役職を削除します。
func (b *Builder) RemovePosition(ctx context.Context, areaTempID, deptTempID, posTempID string) error {
	if err := b.begin(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	area := b.findArea(areaTempID)
	if area == nil {
		return ErrUnknownNode
	}

	var parent *DepartmentDraft
	for _, d := range area.Departments {
		if d.TempID == deptTempID {
			parent = d
			break
		}
	}
	if parent == nil {
		return ErrUnknownNode
	}

	idx := -1
	for i, p := range parent.Positions {
		if p.TempID == posTempID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrUnknownNode
	}

	if err := b.strategy.deletePosition(ctx, parent.Positions[idx]); err != nil {
		return err
	}

	parent.Positions = append(parent.Positions[:idx], parent.Positions[idx+1:]...)
	return nil
}

// EditNode は既存ノードの名前と説明を更新します。編集モード専用です。
// ゲートウェイの更新が成功した場合にのみ、tempID で一致するローカルノードへ
// 反映します。
func (b *Builder) EditNode(ctx context.Context, tempID, name, description string) error {
	if err := b.begin(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if b.mode != ModeEdit {
		return ErrNotEditMode
	}

	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	patch := NodePatch{Name: &name, Description: &description}

	for _, a := range b.areas {
		if a.TempID == tempID {
			if name == "" || description == "" {
				return ErrAreaFieldsRequired
			}
			updated, err := b.gw.Areas.Update(ctx, a.ID, patch)
			if err != nil {
				return err
			}
			a.Name, a.Description = updated.Name, updated.Description
			return nil
		}
		for _, d := range a.Departments {
			if d.TempID == tempID {
				if name == "" || description == "" {
					return ErrDepartmentFieldsRequired
				}
				updated, err := b.gw.Departments.Update(ctx, d.ID, patch)
				if err != nil {
					return err
				}
				d.Name, d.Description = updated.Name, updated.Description
				return nil
			}
			for _, p := range d.Positions {
				if p.TempID == tempID {
					if name == "" || description == "" {
						return ErrPositionFieldsRequired
					}
					updated, err := b.gw.Positions.Update(ctx, p.ID, patch)
					if err != nil {
						return err
					}
					p.Name, p.Description = updated.Name, updated.Description
					return nil
				}
			}
		}
	}

	return ErrUnknownNode
}

func (b *Builder) findArea(tempID string) *AreaDraft {
	if tempID == "" {
		return nil
	}
	for _, a := range b.areas {
		if a.TempID == tempID {
			return a
		}
	}
	return nil
}

func (b *Builder) totalDepartments() int {
	total := 0
	for _, a := range b.areas {
		total += len(a.Departments)
	}
	return total
}

func (b *Builder) totalPositions() int {
	total := 0
	for _, a := range b.areas {
		for _, d := range a.Departments {
			total += len(d.Positions)
		}
	}
	return total
}

func hasEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
