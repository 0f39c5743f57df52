package memory

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/prospect"
)

// ProspectRepository は prospect.Repository のインメモリ実装です。
type ProspectRepository struct {
	mu        sync.RWMutex
	prospects []*prospect.Prospect
	nextID    int
	collator  *collate.Collator
}

// NewProspectRepository は ProspectRepository を生成します。
func NewProspectRepository() *ProspectRepository {
	return &ProspectRepository{
		nextID:   1,
		collator: collate.New(language.French, collate.IgnoreCase),
	}
}

// Add はプロスペクトに ID を採番して登録し、引数へ書き戻します。
func (r *ProspectRepository) Add(_ context.Context, p *prospect.Prospect) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.prospects = append(r.prospects, p.Clone())
}

// Update は同一 ID のプロスペクトを置き換えます。登録順は保持されます。
func (r *ProspectRepository) Update(_ context.Context, p *prospect.Prospect) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.prospects {
		if stored.ID == p.ID {
			r.prospects[i] = p.Clone()
			return true
		}
	}
	return false
}

// Delete はプロスペクトを削除します。対象が存在しない場合は false を返します。
func (r *ProspectRepository) Delete(_ context.Context, id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.prospects {
		if stored.ID == id {
			r.prospects = append(r.prospects[:i], r.prospects[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID は ID でプロスペクトを検索します。返されるプロスペクトは複製です。
func (r *ProspectRepository) FindByID(_ context.Context, id int) (*prospect.Prospect, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, stored := range r.prospects {
		if stored.ID == id {
			return stored.Clone(), true
		}
	}
	return nil, false
}

// FindAll は全プロスペクトを raison sociale の大文字小文字を無視した
// フランス語順で返します。
func (r *ProspectRepository) FindAll(_ context.Context) []*prospect.Prospect {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*prospect.Prospect, 0, len(r.prospects))
	for _, stored := range r.prospects {
		out = append(out, stored.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return r.collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// NameRecords は名称一意性チェック用に ID と raison sociale の組を返します。
func (r *ProspectRepository) NameRecords(_ context.Context) []company.NameRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]company.NameRecord, 0, len(r.prospects))
	for _, stored := range r.prospects {
		records = append(records, company.NameRecord{ID: stored.ID, Name: stored.Name})
	}
	return records
}
