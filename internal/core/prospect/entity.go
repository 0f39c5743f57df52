// Package prospect は見込み顧客のエンティティとユースケースを提供します。
package prospect

import (
	"strings"
	"time"

	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
)

// DateLayout はプロスペクト日付の入出力形式 (jj/mm/aaaa) です。
const DateLayout = "02/01/2006"

// Interest はプロスペクトの関心度を表します。
type Interest string

const (
	InterestYes Interest = "oui"
	InterestNo  Interest = "non"
)

// Label は画面表示用のラベルを返します。
func (i Interest) Label() string {
	switch i {
	case InterestYes:
		return "Oui"
	case InterestNo:
		return "Non"
	default:
		return string(i)
	}
}

// ParseInterest は利用者入力を Interest へ変換します。
func ParseInterest(raw string) (Interest, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "oui", "o", "yes", "y":
		return InterestYes, nil
	case "non", "n", "no":
		return InterestNo, nil
	default:
		return "", company.NewValidationError("interesse", "Le champ 'intéressé' doit être Oui ou Non")
	}
}

// ParseDate は jj/mm/aaaa 形式の文字列を日付へ変換します。
// 存在しない日付(31/02 など)は拒否されます。
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, company.NewValidationError("dateProspection", "La date doit être au format jj/mm/aaaa")
	}
	return t, nil
}

// FormatDate は日付を jj/mm/aaaa 形式の文字列へ整形します。
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Prospect は見込み顧客です。共有部分として company.Company を埋め込み、
// 訪問日と関心度を追加します。
type Prospect struct {
	company.Company
	ProspectedAt time.Time
	Interest     Interest
}

// New は Prospect を生成します。フィールドを固定順に検証し、最初の違反で
// 中断します。ID は所有リポジトリへの登録時に採番されます。
func New(name string, addr company.Address, phone, email, notes string, prospectedAt time.Time, interest Interest) (*Prospect, error) {
	shared, err := company.NewCompany(name, addr, phone, email, notes)
	if err != nil {
		return nil, err
	}

	p := &Prospect{Company: shared}
	if err := p.SetProspectedAt(prospectedAt); err != nil {
		return nil, err
	}
	if err := p.SetInterest(interest); err != nil {
		return nil, err
	}
	return p, nil
}

// SetProspectedAt は訪問日を設定します。ゼロ値は拒否します。
func (p *Prospect) SetProspectedAt(v time.Time) error {
	if v.IsZero() {
		return company.NewValidationError("dateProspection", "La date de prospection est obligatoire.")
	}
	p.ProspectedAt = v
	return nil
}

// SetInterest は関心度を設定します。InterestYes と InterestNo 以外は拒否します。
func (p *Prospect) SetInterest(v Interest) error {
	switch v {
	case InterestYes, InterestNo:
		p.Interest = v
		return nil
	default:
		return company.NewValidationError("interesse", "Le champ 'intéressé' est obligatoire.")
	}
}

// FormattedProspectedAt は訪問日を jj/mm/aaaa 形式で返します。
func (p *Prospect) FormattedProspectedAt() string {
	return FormatDate(p.ProspectedAt)
}

// TypeName は会社種別を返します。
func (p *Prospect) TypeName() string {
	return "Prospect"
}

// Clone は Prospect の複製を返します。
func (p *Prospect) Clone() *Prospect {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
