package position

import "errors"

var (
	// ErrPositionNotFound は役職が存在しない場合に返却されます。
	ErrPositionNotFound = errors.New("position not found")
	// ErrDepartmentNotFound は親となる部署が存在しない場合に返却されます。
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrInvalidName は役職名が不正な場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidDescription は説明が不正な場合に返却されます。
	ErrInvalidDescription = errors.New("invalid description")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidDepartmentID は部署 ID が不正な場合に返却されます。
	ErrInvalidDepartmentID = errors.New("invalid department id")
)
