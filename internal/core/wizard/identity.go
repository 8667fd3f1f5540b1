package wizard

import (
	"fmt"

	"github.com/google/uuid"
)

// ノード種別ごとの tempID プレフィックス。
const (
	kindArea       = "area"
	kindDepartment = "dept"
	kindPosition   = "pos"
)

// newTempID はローカル専用の識別子を生成します。サーバー往復前のノードは
// この値だけで追跡されます。UUID を使うため同一セッション内で衝突しません。
func newTempID(kind string) string {
	return fmt.Sprintf("%s-%s", kind, uuid.NewString())
}

// syncedTempID はサーバー採番済みノードに与える tempID です。
// 編集モードでもローカル検索キーの形を新規作成モードと揃えるために使います。
func syncedTempID(kind string, id int64) string {
	return fmt.Sprintf("%s-%d", kind, id)
}
