package department

import "errors"

var (
	// ErrDepartmentNotFound は部署が存在しない場合に返却されます。
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrAreaNotFound は親となるエリアが存在しない場合に返却されます。
	ErrAreaNotFound = errors.New("area not found")
	// ErrInvalidName は部署名が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidDescription は説明が不正な場合に返却されます。
	ErrInvalidDescription = errors.New("invalid description")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidAreaID はエリア ID が不正な場合に返却されます。
	ErrInvalidAreaID = errors.New("invalid area id")
)
