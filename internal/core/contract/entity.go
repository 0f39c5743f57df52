// Package contract はクライアント契約のエンティティとユースケースを提供します。
package contract

import (
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/validation"
)

// Contract はクライアントに紐づく契約です。ID は所有リポジトリへの
// 登録時に採番されます。
type Contract struct {
	ID       int
	ClientID int
	Name     string
	Amount   float64
}

// New は Contract を生成します。フィールドを固定順に検証し、最初の違反で
// 中断します。
func New(clientID int, name string, amount float64) (*Contract, error) {
	c := &Contract{}
	if err := c.SetClientID(clientID); err != nil {
		return nil, err
	}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetAmount(amount); err != nil {
		return nil, err
	}
	return c, nil
}

// SetClientID は所属クライアント ID を設定します。正の値のみ受け付けます。
func (c *Contract) SetClientID(v int) error {
	if v <= 0 {
		return company.NewValidationError("clientId", "L'ID du client est obligatoire.")
	}
	c.ClientID = v
	return nil
}

// SetName は契約名を設定します。空白のみの値は拒否します。
func (c *Contract) SetName(v string) error {
	if validation.IsBlank(v) {
		return company.NewValidationError("nomContrat", "Le nom du contrat est obligatoire.")
	}
	c.Name = v
	return nil
}

// SetAmount は契約金額を設定します。0 以下は拒否します。
func (c *Contract) SetAmount(v float64) error {
	if v <= 0 {
		return company.NewValidationError("montant", "Le montant doit être positif.")
	}
	c.Amount = v
	return nil
}

// Clone は Contract の複製を返します。
func (c *Contract) Clone() *Contract {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
