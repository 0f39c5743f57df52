package contract

import "context"

// Repository は契約の永続化を抽象化します。契約はクライアント側のリストでは
// なく、このリポジトリが ClientID の索引として一元管理します。
type Repository interface {
	// Add は契約に ID を採番して登録し、引数へ書き戻します。
	Add(ctx context.Context, c *Contract)
	// Update は同一 ID の契約を置き換えます。登録順は保持されます。
	// 対象が存在しない場合は false を返します。
	Update(ctx context.Context, c *Contract) bool
	// Delete は契約を削除します。対象が存在しない場合は false を返します。
	Delete(ctx context.Context, id int) bool
	// FindByID は ID で契約を検索します。返される契約は複製です。
	FindByID(ctx context.Context, id int) (*Contract, bool)
	// FindAll は全契約を登録順で返します。返されるスライスと要素は複製です。
	FindAll(ctx context.Context) []*Contract
	// FindByClientID は指定クライアントの契約を登録順で返します。
	// 該当がない場合は空スライスを返します。
	FindByClientID(ctx context.Context, clientID int) []*Contract
}

// ClientDirectory はクライアントの存在確認だけを切り出した参照です。
type ClientDirectory interface {
	Exists(ctx context.Context, id int) bool
}
