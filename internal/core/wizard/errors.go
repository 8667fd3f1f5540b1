package wizard

import "errors"

var (
	// ErrCompanyInfoIncomplete は企業情報の必須項目が未入力の場合に返却されます。
	ErrCompanyInfoIncomplete = errors.New("company info incomplete")
	// ErrAreaFieldsRequired はエリアの名前または説明が未入力の場合に返却されます。
	ErrAreaFieldsRequired = errors.New("area name and description are required")
	// ErrDepartmentFieldsRequired は部署の名前または説明が未入力の場合に返却されます。
	ErrDepartmentFieldsRequired = errors.New("department name and description are required")
	// ErrPositionFieldsRequired は役職の名前または説明が未入力の場合に返却されます。
	ErrPositionFieldsRequired = errors.New("position name and description are required")
	// ErrNoAreas はエリアが 1 つもない状態で次に進もうとした場合に返却されます。
	ErrNoAreas = errors.New("at least one area is required")
	// ErrNoDepartments は部署が 1 つもない状態で次に進もうとした場合に返却されます。
	ErrNoDepartments = errors.New("at least one department is required")
	// ErrNoPositions は役職が 1 つもない状態で次に進もうとした場合に返却されます。
	ErrNoPositions = errors.New("at least one position is required")
	// ErrNoAreaSelected はエリア未選択で部署を操作しようとした場合に返却されます。
	ErrNoAreaSelected = errors.New("no area selected")
	// ErrNoDepartmentSelected は部署未選択で役職を操作しようとした場合に返却されます。
	ErrNoDepartmentSelected = errors.New("no department selected")
	// ErrUnknownNode は tempID に対応するノードが存在しない場合に返却されます。
	ErrUnknownNode = errors.New("unknown node")
	// ErrOperationInFlight は前回の操作が完了していない場合に返却されます。
	// 二重送信(ダブルクリック)の抑止に使います。
	ErrOperationInFlight = errors.New("operation already in flight")
	// ErrNotEditMode は編集モード専用の操作を新規作成モードで呼び出した場合に返却されます。
	ErrNotEditMode = errors.New("not in edit mode")
	// ErrInvalidStep は現在のステップで許可されない遷移を要求した場合に返却されます。
	ErrInvalidStep = errors.New("invalid step transition")
)
