package area

import "errors"

var (
	// ErrAreaNotFound はエリアが存在しない場合に返却されます。
	ErrAreaNotFound = errors.New("area not found")
	// ErrCompanyNotFound は親となる企業が存在しない場合に返却されます。
	ErrCompanyNotFound = errors.New("company not found")
	// ErrInvalidName はエリア名が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidDescription は説明が不正な場合に返却されます。
	ErrInvalidDescription = errors.New("invalid description")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidCompanyID は企業 ID が不正な場合に返却されます。
	ErrInvalidCompanyID = errors.New("invalid company id")
)
