package position

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

// Service は役職に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は役職ユースケースの公開インターフェースです。
type UseCase interface {
	CreatePosition(ctx context.Context, in CreatePositionInput) (*Position, error)
	GetPosition(ctx context.Context, in GetPositionInput) (*Position, error)
	ListPositions(ctx context.Context, in ListPositionsInput) (*ListPositionsResult, error)
	UpdatePosition(ctx context.Context, in UpdatePositionInput) (*Position, error)
	DeletePosition(ctx context.Context, in DeletePositionInput) error
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

// CreatePositionInput は役職作成時の入力です。
type CreatePositionInput struct {
	Name         string
	Description  string
	DepartmentID int64
}

// UpdatePositionInput は役職更新時の入力です。
type UpdatePositionInput struct {
	ID          int64
	Name        *string
	Description *string
}

// DeletePositionInput は役職削除時の入力です。
type DeletePositionInput struct {
	ID int64
}

// GetPositionInput は役職取得時の入力です。
type GetPositionInput struct {
	ID int64
}

// ListPositionsInput は一覧取得時の入力です。
type ListPositionsInput struct {
	Page         listing.Params
	Name         *string
	DepartmentID *int64
}

// ListPositionsResult は一覧取得結果を表します。
type ListPositionsResult struct {
	Positions []*Position
	Total     int
	PageSize  int
	Offset    int
}

// CreatePosition は部署配下に新しい役職を作成します。
func (s *Service) CreatePosition(ctx context.Context, in CreatePositionInput) (*Position, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	description, err := normalizeDescription(in.Description)
	if err != nil {
		return nil, err
	}

	if in.DepartmentID <= 0 {
		return nil, fmt.Errorf("department id: %w", ErrInvalidDepartmentID)
	}

	var created *Position
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Position{
			Name:         name,
			Description:  description,
			DepartmentID: in.DepartmentID,
			CreatedAt:    now,
			UpdatedAt:    now,
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

// UpdatePosition は役職情報を部分更新します。
func (s *Service) UpdatePosition(ctx context.Context, in UpdatePositionInput) (*Position, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Position
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

// DeletePosition は役職を削除します。
func (s *Service) DeletePosition(ctx context.Context, in DeletePositionInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// GetPosition は ID で役職を取得します。
func (s *Service) GetPosition(ctx context.Context, in GetPositionInput) (*Position, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Position
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

// ListPositions は役職の一覧を取得します。
func (s *Service) ListPositions(ctx context.Context, in ListPositionsInput) (*ListPositionsResult, error) {
	page, err := in.Page.Normalize(listOrderColumns...)
	if err != nil {
		return nil, err
	}

	if in.DepartmentID != nil && *in.DepartmentID <= 0 {
		return nil, fmt.Errorf("department id: %w", ErrInvalidDepartmentID)
	}

	var (
		positions []*Position
		total     int
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		results, count, err := s.repo.List(txCtx, ListPositionsFilter{
			Page:         page,
			Name:         normalizeNameFilter(in.Name),
			DepartmentID: in.DepartmentID,
		})
		if err != nil {
			return err
		}
		positions = results
		total = count
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListPositionsResult{
		Positions: positions,
		Total:     total,
		PageSize:  page.PageSize,
		Offset:    page.Offset,
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
