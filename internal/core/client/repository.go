package client

import "context"

// Repository はクライアント集合へのアクセスを抽象化します。欠損は
// 戻り値のフラグで報告され、エラーにはなりません。
type Repository interface {
	// Add は c を末尾に追加し、採番した ID を c に書き戻します。
	// 一意性や参照の検査は行いません。呼び出し側の責務です。
	Add(ctx context.Context, c *Client)
	// Update は同じ ID の要素を、リスト内の位置を保ったまま置き換えます。
	// 対象が存在しない場合は false を返します。
	Update(ctx context.Context, c *Client) bool
	// Delete は id のクライアントを削除します。保有契約も連動して
	// 削除されます。対象が存在しない場合は何もせず false を返します。
	Delete(ctx context.Context, id int) bool
	// FindByID は id のクライアントの複製を返します。
	FindByID(ctx context.Context, id int) (*Client, bool)
	// FindAll は raison sociale の大文字小文字を無視した順に並べた
	// 防御的コピーを返します。
	FindAll(ctx context.Context) []*Client
}
