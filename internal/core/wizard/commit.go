package wizard

import (
	"context"
	"fmt"
)

// CommitKind はコミット記録の対象ノード種別です。
type CommitKind string

const (
	CommitCompany    CommitKind = "company"
	CommitArea       CommitKind = "area"
	CommitDepartment CommitKind = "department"
	CommitPosition   CommitKind = "position"
)

// CommitRecord は一括コミットで作成された 1 ノードの記録です。
type CommitRecord struct {
	Kind     CommitKind
	TempID   string
	ServerID int64
}

// SubmitResult はウィザード完了時の結果です。
type SubmitResult struct {
	// CompanyID は対象となった企業のサーバー ID です。
	CompanyID int64
	// AlreadyPersisted は編集モードで、全変更が逐次コミット済みだったことを示します。
	AlreadyPersisted bool
	// Committed は一括コミットで作成されたノードの記録です。
	Committed []CommitRecord
}

// Submit はレビューステップでウィザードを完了します。
//
// 編集モードではすべての変更が逐次コミット済みのため、追加のネットワーク
// 呼び出しは行いません。新規作成モードでは企業 → エリア → 部署 → 役職の順に
// 一括コミットします。子ノードの作成は親のサーバー ID が採番されるまで決して
// 行いません。
//
// 途中で失敗した場合、残りの作成は中断され、作成済みノードはロールバック
// されません。どこまで作成されたかは CommitLog で確認できます。
func (b *Builder) Submit(ctx context.Context) (*SubmitResult, error) {
	if err := b.begin(); err != nil {
		return nil, err
	}
	defer b.mu.Unlock()

	if b.step != StepReview || b.submitted {
		return nil, ErrInvalidStep
	}

	if b.mode == ModeEdit {
		b.submitted = true
		return &SubmitResult{CompanyID: b.company.ID, AlreadyPersisted: true}, nil
	}

	result, err := b.bulkCommit(ctx)
	if err != nil {
		return nil, err
	}

	b.submitted = true
	return result, nil
}

func (b *Builder) bulkCommit(ctx context.Context) (*SubmitResult, error) {
	b.commitLog = b.commitLog[:0]

	createdCompany, err := b.gw.Companies.Create(ctx, b.company.info())
	if err != nil {
		return nil, fmt.Errorf("wizard: create company %q: %w", b.company.Name, err)
	}
	b.company.ID = createdCompany.ID
	b.record(CommitCompany, "", createdCompany.ID)

	for _, a := range b.areas {
		created, err := b.gw.Areas.Create(ctx, AreaPayload{
			Name:        a.Name,
			Description: a.Description,
			CompanyID:   createdCompany.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("wizard: create area %q: %w", a.Name, err)
		}
		a.ID = created.ID
		b.record(CommitArea, a.TempID, created.ID)
	}

	for _, a := range b.areas {
		for _, d := range a.Departments {
			created, err := b.gw.Departments.Create(ctx, DepartmentPayload{
				Name:        d.Name,
				Description: d.Description,
				AreaID:      a.ID,
			})
			if err != nil {
				return nil, fmt.Errorf("wizard: create department %q: %w", d.Name, err)
			}
			d.ID = created.ID
			b.record(CommitDepartment, d.TempID, created.ID)
		}
	}

	for _, a := range b.areas {
		for _, d := range a.Departments {
			for _, p := range d.Positions {
				created, err := b.gw.Positions.Create(ctx, PositionPayload{
					Name:         p.Name,
					Description:  p.Description,
					DepartmentID: d.ID,
				})
				if err != nil {
					return nil, fmt.Errorf("wizard: create position %q: %w", p.Name, err)
				}
				p.ID = created.ID
				b.record(CommitPosition, p.TempID, created.ID)
			}
		}
	}

	return &SubmitResult{
		CompanyID: createdCompany.ID,
		Committed: b.CommitLog(),
	}, nil
}

func (b *Builder) record(kind CommitKind, tempID string, serverID int64) {
	b.commitLog = append(b.commitLog, CommitRecord{Kind: kind, TempID: tempID, ServerID: serverID})
}
