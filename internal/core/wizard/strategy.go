package wizard

import "context"

// persister はノード操作をローカルバッファに留めるか、即時にゲートウェイへ
// 反映するかを切り替える戦略です。ウィザード開始時にモードに応じて一度だけ
// 選択され、以後すべてのノード操作が同じ戦略を経由します。
type persister interface {
	updateCompany(ctx context.Context, draft *CompanyDraft) error
	createArea(ctx context.Context, company *CompanyDraft, name, description string) (*AreaDraft, error)
	deleteArea(ctx context.Context, a *AreaDraft) error
	createDepartment(ctx context.Context, parent *AreaDraft, name, description string) (*DepartmentDraft, error)
	deleteDepartment(ctx context.Context, d *DepartmentDraft) error
	createPosition(ctx context.Context, parent *DepartmentDraft, name, description string) (*PositionDraft, error)
	deletePosition(ctx context.Context, p *PositionDraft) error
}

// bufferedPersister は新規作成モードの戦略です。一切ネットワークに触れず、
// レビューステップの一括コミットまでローカルバッファだけを更新します。
type bufferedPersister struct {
	genTempID func(kind string) string
}

func (s *bufferedPersister) updateCompany(context.Context, *CompanyDraft) error {
	return nil
}

func (s *bufferedPersister) createArea(_ context.Context, _ *CompanyDraft, name, description string) (*AreaDraft, error) {
	return &AreaDraft{
		TempID:      s.genTempID(kindArea),
		Name:        name,
		Description: description,
	}, nil
}

func (s *bufferedPersister) deleteArea(context.Context, *AreaDraft) error {
	return nil
}

func (s *bufferedPersister) createDepartment(_ context.Context, _ *AreaDraft, name, description string) (*DepartmentDraft, error) {
	return &DepartmentDraft{
		TempID:      s.genTempID(kindDepartment),
		Name:        name,
		Description: description,
	}, nil
}

func (s *bufferedPersister) deleteDepartment(context.Context, *DepartmentDraft) error {
	return nil
}

func (s *bufferedPersister) createPosition(_ context.Context, _ *DepartmentDraft, name, description string) (*PositionDraft, error) {
	return &PositionDraft{
		TempID:      s.genTempID(kindPosition),
		Name:        name,
		Description: description,
	}, nil
}

func (s *bufferedPersister) deletePosition(context.Context, *PositionDraft) error {
	return nil
}

// immediatePersister は編集モードの戦略です。ゲートウェイ呼び出しが成功した
// 場合にのみローカル状態へ反映するため、失敗時はサーバーと一致した最後の
// 状態が保たれます。
type immediatePersister struct {
	gw Gateways
}

func (s *immediatePersister) updateCompany(ctx context.Context, draft *CompanyDraft) error {
	updated, err := s.gw.Companies.Update(ctx, draft.ID, draft.info())
	if err != nil {
		return err
	}

	draft.Name = updated.Name
	draft.Address = updated.Address
	draft.Email = updated.Email
	draft.Phone = updated.Phone
	draft.Industry = updated.Industry
	return nil
}

func (s *immediatePersister) createArea(ctx context.Context, company *CompanyDraft, name, description string) (*AreaDraft, error) {
	created, err := s.gw.Areas.Create(ctx, AreaPayload{
		Name:        name,
		Description: description,
		CompanyID:   company.ID,
	})
	if err != nil {
		return nil, err
	}

	return &AreaDraft{
		TempID:      syncedTempID(kindArea, created.ID),
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
	}, nil
}

func (s *immediatePersister) deleteArea(ctx context.Context, a *AreaDraft) error {
	// 配下の部署・役職はバックエンドがカスケード削除する前提。
	return s.gw.Areas.Delete(ctx, a.ID)
}

func (s *immediatePersister) createDepartment(ctx context.Context, parent *AreaDraft, name, description string) (*DepartmentDraft, error) {
	created, err := s.gw.Departments.Create(ctx, DepartmentPayload{
		Name:        name,
		Description: description,
		AreaID:      parent.ID,
	})
	if err != nil {
		return nil, err
	}

	return &DepartmentDraft{
		TempID:      syncedTempID(kindDepartment, created.ID),
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
	}, nil
}

func (s *immediatePersister) deleteDepartment(ctx context.Context, d *DepartmentDraft) error {
	return s.gw.Departments.Delete(ctx, d.ID)
}

func (s *immediatePersister) createPosition(ctx context.Context, parent *DepartmentDraft, name, description string) (*PositionDraft, error) {
	created, err := s.gw.Positions.Create(ctx, PositionPayload{
		Name:         name,
		Description:  description,
		DepartmentID: parent.ID,
	})
	if err != nil {
		return nil, err
	}

	return &PositionDraft{
		TempID:      syncedTempID(kindPosition, created.ID),
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
	}, nil
}

func (s *immediatePersister) deletePosition(ctx context.Context, p *PositionDraft) error {
	return s.gw.Positions.Delete(ctx, p.ID)
}
