package company

import (
	"context"
	"fmt"
	"net/mail"
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

// 並び替えを許可するカラム。
var listOrderColumns = []string{"id", "name", "created_at"}

// Service は企業に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は企業ユースケースの公開インターフェースです。
type UseCase interface {
	CreateCompany(ctx context.Context, in CreateCompanyInput) (*Company, error)
	GetCompany(ctx context.Context, in GetCompanyInput) (*Company, error)
	ListCompanies(ctx context.Context, in ListCompaniesInput) (*ListCompaniesResult, error)
	UpdateCompany(ctx context.Context, in UpdateCompanyInput) (*Company, error)
	DeleteCompany(ctx context.Context, in DeleteCompanyInput) error
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

// CreateCompanyInput は企業作成時の入力です。
type CreateCompanyInput struct {
	Name     string
	Address  string
	Email    string
	Phone    string
	Industry string
}

// UpdateCompanyInput は企業更新時の入力です。
type UpdateCompanyInput struct {
	ID       int64
	Name     *string
	Address  *string
	Email    *string
	Phone    *string
	Industry *string
}

// DeleteCompanyInput は企業削除時の入力です。
type DeleteCompanyInput struct {
	ID int64
}

// GetCompanyInput は企業取得時の入力です。
type GetCompanyInput struct {
	ID int64
}

// ListCompaniesInput は一覧取得時の入力です。
type ListCompaniesInput struct {
	Page listing.Params
	Name *string
}

// ListCompaniesResult は一覧取得結果を表します。
type ListCompaniesResult struct {
	Companies []*Company
	Total     int
	PageSize  int
	Offset    int
}

// CreateCompany は新しい企業を作成します。
func (s *Service) CreateCompany(ctx context.Context, in CreateCompanyInput) (*Company, error) {
	name, err := requireField(in.Name, ErrInvalidName)
	if err != nil {
		return nil, err
	}

	address, err := requireField(in.Address, ErrInvalidAddress)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	phone, err := requireField(in.Phone, ErrInvalidPhone)
	if err != nil {
		return nil, err
	}

	industry, err := requireField(in.Industry, ErrInvalidIndustry)
	if err != nil {
		return nil, err
	}

	var created *Company
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Company{
			Name:      name,
			Address:   address,
			Email:     email,
			Phone:     phone,
			Industry:  &industry,
			CreatedAt: now,
			UpdatedAt: now,
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

// UpdateCompany は企業情報を部分更新します。
func (s *Service) UpdateCompany(ctx context.Context, in UpdateCompanyInput) (*Company, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Company
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, in.ID)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name, err := requireField(*in.Name, ErrInvalidName)
			if err != nil {
				return err
			}
			existing.Name = name
		}

		if in.Address != nil {
			address, err := requireField(*in.Address, ErrInvalidAddress)
			if err != nil {
				return err
			}
			existing.Address = address
		}

		if in.Email != nil {
			email, err := normalizeEmail(*in.Email)
			if err != nil {
				return err
			}
			existing.Email = email
		}

		if in.Phone != nil {
			phone, err := requireField(*in.Phone, ErrInvalidPhone)
			if err != nil {
				return err
			}
			existing.Phone = phone
		}

		if in.Industry != nil {
			industry, err := requireField(*in.Industry, ErrInvalidIndustry)
			if err != nil {
				return err
			}
			existing.Industry = &industry
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

// DeleteCompany は企業を削除します。配下の組織は DB 側のカスケードで削除されます。
func (s *Service) DeleteCompany(ctx context.Context, in DeleteCompanyInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, in.ID)
	})
}

// GetCompany は ID で企業を取得します。
func (s *Service) GetCompany(ctx context.Context, in GetCompanyInput) (*Company, error) {
	if in.ID <= 0 {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var found *Company
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

// ListCompanies は企業の一覧を取得します。
func (s *Service) ListCompanies(ctx context.Context, in ListCompaniesInput) (*ListCompaniesResult, error) {
	page, err := in.Page.Normalize(listOrderColumns...)
	if err != nil {
		return nil, err
	}

	var (
		companies []*Company
		total     int
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		results, count, err := s.repo.List(txCtx, ListCompaniesFilter{
			Page: page,
			Name: normalizeNameFilter(in.Name),
		})
		if err != nil {
			return err
		}
		companies = results
		total = count
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListCompaniesResult{
		Companies: companies,
		Total:     total,
		PageSize:  page.PageSize,
		Offset:    page.Offset,
	}, nil
}

func requireField(raw string, invalid error) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", invalid
	}
	return trimmed, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
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
