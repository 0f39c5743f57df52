// Package memory はインメモリのリポジトリ実装を提供します。各リポジトリは
// 自前のミューテックスと ID カウンタを持ち、格納値の複製のみを外へ渡します。
package memory

import (
	"context"
	"sync"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/contract"
)

// ContractRepository は contract.Repository のインメモリ実装です。
type ContractRepository struct {
	mu        sync.RWMutex
	contracts []*contract.Contract
	nextID    int
}

// NewContractRepository は ContractRepository を生成します。ID 採番は 1 から
// 始まり、削除があっても再利用されません。
func NewContractRepository() *ContractRepository {
	return &ContractRepository{nextID: 1}
}

// Add は契約に ID を採番して登録し、引数へ書き戻します。
func (r *ContractRepository) Add(_ context.Context, c *contract.Contract) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	r.contracts = append(r.contracts, c.Clone())
}

// Update は同一 ID の契約を置き換えます。登録順は保持されます。
func (r *ContractRepository) Update(_ context.Context, c *contract.Contract) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.contracts {
		if stored.ID == c.ID {
			r.contracts[i] = c.Clone()
			return true
		}
	}
	return false
}

// Delete は契約を削除します。対象が存在しない場合は false を返します。
func (r *ContractRepository) Delete(_ context.Context, id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.contracts {
		if stored.ID == id {
			r.contracts = append(r.contracts[:i], r.contracts[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteByClientID は指定クライアントの契約をまとめて削除し、削除した
// 件数を返します。クライアント削除時のカスケードに使われます。
func (r *ContractRepository) DeleteByClientID(_ context.Context, clientID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.contracts[:0]
	removed := 0
	for _, stored := range r.contracts {
		if stored.ClientID == clientID {
			removed++
			continue
		}
		kept = append(kept, stored)
	}
	r.contracts = kept
	return removed
}

// FindByID は ID で契約を検索します。返される契約は複製です。
func (r *ContractRepository) FindByID(_ context.Context, id int) (*contract.Contract, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.contracts {
		if stored.ID == id {
			return stored.Clone(), true
		}
	}
	return nil, false
}

// FindAll は全契約を登録順で返します。
func (r *ContractRepository) FindAll(_ context.Context) []*contract.Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*contract.Contract, 0, len(r.contracts))
	for _, stored := range r.contracts {
		out = append(out, stored.Clone())
	}
	return out
}

// FindByClientID は指定クライアントの契約を登録順で返します。
func (r *ContractRepository) FindByClientID(_ context.Context, clientID int) []*contract.Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*contract.Contract, 0)
	for _, stored := range r.contracts {
		if stored.ClientID == clientID {
			out = append(out, stored.Clone())
		}
	}
	return out
}
