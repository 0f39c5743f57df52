package memory

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/client"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
)

// ClientRepository は client.Repository のインメモリ実装です。クライアント
// 削除時には ContractRepository へカスケードし、紐づく契約も取り除きます。
type ClientRepository struct {
	mu        sync.RWMutex
	clients   []*client.Client
	nextID    int
	contracts *ContractRepository
	collator  *collate.Collator
}

// NewClientRepository は ClientRepository を生成します。contracts は
// カスケード削除先として必須です。
func NewClientRepository(contracts *ContractRepository) *ClientRepository {
	return &ClientRepository{
		nextID:    1,
		contracts: contracts,
		collator:  collate.New(language.French, collate.IgnoreCase),
	}
}

// Add はクライアントに ID を採番して登録し、引数へ書き戻します。
func (r *ClientRepository) Add(_ context.Context, c *client.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	r.clients = append(r.clients, c.Clone())
}

// Update は同一 ID のクライアントを置き換えます。登録順は保持されます。
func (r *ClientRepository) Update(_ context.Context, c *client.Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.clients {
		if stored.ID == c.ID {
			r.clients[i] = c.Clone()
			return true
		}
	}
	return false
}

// Delete はクライアントを削除し、紐づく契約もまとめて取り除きます。
// 対象が存在しない場合は契約に触れず false を返します。
func (r *ClientRepository) Delete(ctx context.Context, id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.clients {
		if stored.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			r.contracts.DeleteByClientID(ctx, id)
			return true
		}
	}
	return false
}

// FindByID は ID でクライアントを検索します。返されるクライアントは複製です。
func (r *ClientRepository) FindByID(_ context.Context, id int) (*client.Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.clients {
		if stored.ID == id {
			return stored.Clone(), true
		}
	}
	return nil, false
}

// FindAll は全クライアントを raison sociale の大文字小文字を無視した
// フランス語順で返します。返されるスライスと要素は複製です。
func (r *ClientRepository) FindAll(_ context.Context) []*client.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*client.Client, 0, len(r.clients))
	for _, stored := range r.clients {
		out = append(out, stored.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return r.collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// Exists はクライアントの存在だけを確認します。
func (r *ClientRepository) Exists(_ context.Context, id int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.clients {
		if stored.ID == id {
			return true
		}
	}
	return false
}

// NameRecords は名称一意性チェック用に ID と raison sociale の組を返します。
func (r *ClientRepository) NameRecords(_ context.Context) []company.NameRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]company.NameRecord, 0, len(r.clients))
	for _, stored := range r.clients {
		records = append(records, company.NameRecord{ID: stored.ID, Name: stored.Name})
	}
	return records
}
