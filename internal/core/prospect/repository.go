package prospect

import "context"

// Repository はプロスペクト集合へのアクセスを抽象化します。欠損は
// 戻り値のフラグで報告され、エラーにはなりません。
type Repository interface {
	// Add は p を末尾に追加し、採番した ID を p に書き戻します。
	Add(ctx context.Context, p *Prospect)
	// Update は同じ ID の要素を、リスト内の位置を保ったまま置き換えます。
	Update(ctx context.Context, p *Prospect) bool
	// Delete は id のプロスペクトを削除します。対象が存在しない場合は
	// 何もせず false を返します。
	Delete(ctx context.Context, id int) bool
	// FindByID は id のプロスペクトの複製を返します。
	FindByID(ctx context.Context, id int) (*Prospect, bool)
	// FindAll は raison sociale の大文字小文字を無視した順に並べた
	// 防御的コピーを返します。
	FindAll(ctx context.Context) []*Prospect
}
