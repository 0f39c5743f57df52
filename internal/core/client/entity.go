// Package client は契約済み顧客のエンティティとユースケースを提供します。
package client

import (
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/company"
)

// 年間売上の下限(ユーロ)。
const minRevenue = 200

// Client は契約済みの会社です。共有部分として company.Company を埋め込み、
// 売上と従業員数を追加します。保有契約は契約リポジトリ側で管理され、
// エンティティ自身は契約への参照を持ちません。
type Client struct {
	company.Company
	Revenue   int64
	Headcount int
}

// New は Client を生成します。フィールドを固定順に検証し、最初の違反で
// 中断します。ID は所有リポジトリへの登録時に採番されます。
func New(name string, addr company.Address, phone, email, notes string, revenue int64, headcount int) (*Client, error) {
	shared, err := company.NewCompany(name, addr, phone, email, notes)
	if err != nil {
		return nil, err
	}

	c := &Client{Company: shared}
	if err := c.SetRevenue(revenue); err != nil {
		return nil, err
	}
	if err := c.SetHeadcount(headcount); err != nil {
		return nil, err
	}
	return c, nil
}

// SetRevenue は chiffre d'affaires を設定します。200 未満は拒否します。
func (c *Client) SetRevenue(v int64) error {
	if v < minRevenue {
		return company.NewValidationError("chiffreAffaires", "Le chiffre d'affaires doit être >= 200.")
	}
	c.Revenue = v
	return nil
}

// SetHeadcount は従業員数を設定します。1 未満は拒否します。
func (c *Client) SetHeadcount(v int) error {
	if v < 1 {
		return company.NewValidationError("nbEmployes", "Le nombre d'employés doit être >= 1")
	}
	c.Headcount = v
	return nil
}

// TypeName は会社種別を返します。
func (c *Client) TypeName() string {
	return "Client"
}

// Clone は Client の複製を返します。
func (c *Client) Clone() *Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
