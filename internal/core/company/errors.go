package company

import "errors"

var (
	// ErrCompanyNotFound は企業が存在しない場合に返却されます。
	ErrCompanyNotFound = errors.New("company not found")
	// ErrInvalidName は企業名が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidAddress は住所が不正な場合に返却されます。
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidEmail はメールアドレスが不正な場合に返却されます。
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidPhone は電話番号が不正な場合に返却されます。
	ErrInvalidPhone = errors.New("invalid phone")
	// ErrInvalidIndustry は業種が不正な場合に返却されます。
	ErrInvalidIndustry = errors.New("invalid industry")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
)
