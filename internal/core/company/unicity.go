package company

import (
	"context"
	"strings"
)

// ExcludeNone は新規作成時の重複チェックで既存レコードを除外しないことを表します。
const ExcludeNone = -1

// NameRecord は一意性チェックに必要な最小限の射影です。
type NameRecord struct {
	ID   int
	Name string
}

// NameSource は会社名の一覧を提供するリポジトリの抽象です。
type NameSource interface {
	NameRecords(ctx context.Context) []NameRecord
}

// UnicityChecker は raison sociale がクライアントとプロスペクトの全体で
// 重複していないことを確認します。
type UnicityChecker struct {
	sources []NameSource
}

// NewUnicityChecker は UnicityChecker を生成します。sources の順に走査します。
func NewUnicityChecker(sources ...NameSource) *UnicityChecker {
	return &UnicityChecker{sources: sources}
}

// IsDuplicateName は name と大文字小文字を無視して一致する別エンティティが
// 存在する場合に true を返します。ID が excludeID のレコードは編集中の
// エンティティ自身とみなして無視します。新規作成時は ExcludeNone を渡します。
func (c *UnicityChecker) IsDuplicateName(ctx context.Context, name string, excludeID int) bool {
	for _, src := range c.sources {
		for _, rec := range src.NameRecords(ctx) {
			if rec.ID == excludeID {
				continue
			}
			if strings.EqualFold(rec.Name, name) {
				return true
			}
		}
	}
	return false
}
