package area

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/hr-structure/internal/core/listing"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

var listOrderColumns = []string{"id", "name", "created_at"}

// Service はエリアに関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase はエリアユースケースの公開インターフェースです。
type UseCase interface {
	CreateArea(ctx context.Context, in CreateAreaInput) (*Area, error)
	GetArea(ctx context.Context, in GetAreaInput) (*Area, error)
	ListAreas(ctx context.Context, in ListAreasInput) (*ListAreasResult, error)
	UpdateArea(ctx context.Context, in UpdateAreaInput) (*Area, error)
	DeleteArea(ctx context.Context, in DeleteAreaInput) error
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// CreateAreaInput はエリア作成時の入力です。
type CreateAreaInput struct {
	Name        string
	Description string
	CompanyID   int64
}

// UpdateAreaInput はエリア更新時の入力です。
type UpdateAreaInput struct {
	ID          int64
	Name        *string
	Description *string
}

// DeleteAreaInput はエリア削除時の入力です。
type DeleteAreaInput struct {
	ID int64
}

// GetAreaInput はエリア取得時の入力です。
type GetAreaInput struct {
	ID int64
}

// ListAreasInput は一覧取得時の入力です。
type ListAreasInput struct {
	Page      listing.Params
	Name      *string
	CompanyID *int64
}

// ListAreasResult は一覧取得結果を表します。
type ListAreasResult struct {
	Areas    []*Area
	Total    int
	PageSize int
	Offset   int
}

// CreateArea は企業配下に新しいエリアを作成します。
func (s *Service) CreateArea(ctx context.Context, in CreateAreaInput) (*Area, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	description, err := normalizeDescription(in.Description)
	if err != nil {
		return nil, err
	}

	if in.CompanyID <= 0 {
		return nil, fmt.Errorf("company id: %w", ErrInvalidCompanyID)
	}

	var created *Area
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Area{
			Name:        name,
			Description: description,
			CompanyID:   in.CompanyID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}

		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateArea はエリア情報を部分更新します。
func (s *Service) UpdateArea(ctx context.Context, in UpdateAreaInput) (*Area, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Area
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name, err := normalizeName(*in.Name)
			if err != nil {
				return err
			}
			existing.Name = name
		}

		if in.Description != nil {
			description, err := normalizeDescription(*in.Description)
			if err != nil {
				return err
			}
			existing.Description = description
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteArea はエリアを削除します。配下の部署・役職は DB 側のカスケードで削除されます。
func (s *Service) DeleteArea(ctx context.Context, in DeleteAreaInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// GetArea は ID でエリアを取得します。
func (s *Service) GetArea(ctx context.Context, in GetAreaInput) (*Area, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Area
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListAreas はエリアの一覧を取得します。
func (s *Service) ListAreas(ctx context.Context, in ListAreasInput) (*ListAreasResult, error) {
	page, err := in.Page.Normalize(listOrderColumns...)
	if err != nil {
		return nil, err
	}

	if in.CompanyID != nil && *in.CompanyID <= 0 {
		return nil, fmt.Errorf("company id: %w", ErrInvalidCompanyID)
	}

	var (
		areas []*Area
		total int
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		results, count, err := s.repo.List(txCtx, ListAreasFilter{
			Page:      page,
			Name:      normalizeNameFilter(in.Name),
			CompanyID: in.CompanyID,
		})
		if err != nil {
			return err
		}
		areas = results
		total = count
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListAreasResult{
		Areas:    areas,
		Total:    total,
		PageSize: page.PageSize,
		Offset:   page.Offset,
	}, nil
}

func normalizeName(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidName
	}
	return trimmed, nil
}

func normalizeDescription(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidDescription
	}
	return trimmed, nil
}

func normalizeNameFilter(raw *string) *string {
	if raw == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
