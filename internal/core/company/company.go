// Package company はクライアントとプロスペクトが共有する会社情報と、
// raison sociale の一意性チェックを提供します。
package company

import (
	"github.com/ogurasousui/codex-crm-clean-arch/internal/core/validation"
)

// Address は会社の所在地です。Company に値として埋め込まれます。
type Address struct {
	StreetNumber string
	StreetName   string
	PostalCode   string
	City         string
}

// NewAddress は Address を生成します。フィールドを固定順に検証し、
// 最初の違反で中断します。
func NewAddress(streetNumber, streetName, postalCode, city string) (Address, error) {
	var a Address
	if err := a.SetStreetNumber(streetNumber); err != nil {
		return Address{}, err
	}
	if err := a.SetStreetName(streetName); err != nil {
		return Address{}, err
	}
	if err := a.SetPostalCode(postalCode); err != nil {
		return Address{}, err
	}
	if err := a.SetCity(city); err != nil {
		return Address{}, err
	}
	return a, nil
}

// SetStreetNumber は番地を設定します。空白のみは拒否します。
func (a *Address) SetStreetNumber(v string) error {
	if validation.IsBlank(v) {
		return NewValidationError("numeroRue", "Le numéro de rue est obligatoire")
	}
	a.StreetNumber = v
	return nil
}

// SetStreetName は通り名を設定します。空白のみは拒否します。
func (a *Address) SetStreetName(v string) error {
	if validation.IsBlank(v) {
		return NewValidationError("nomRue", "Le nom de rue est obligatoire")
	}
	a.StreetName = v
	return nil
}

// SetPostalCode は郵便番号を設定します。数字 5 桁以外は拒否します。
func (a *Address) SetPostalCode(v string) error {
	if !validation.IsPostalCode(v) {
		return NewValidationError("codePostal", "Le code postal doit contenir exactement 5 chiffres")
	}
	a.PostalCode = v
	return nil
}

// SetCity は市町村名を設定します。空白のみは拒否します。
func (a *Address) SetCity(v string) error {
	if validation.IsBlank(v) {
		return NewValidationError("ville", "La ville est obligatoire")
	}
	a.City = v
	return nil
}

// String は "numéro rue code_postal ville" の形式で整形します。
func (a Address) String() string {
	return a.StreetNumber + " " + a.StreetName + " " + a.PostalCode + " " + a.City
}

// Company は会社エンティティの共有部分です。Client と Prospect に
// 埋め込まれます。ID は所有リポジトリが採番し、エンティティ自身は
// 再検証しません。
type Company struct {
	ID      int
	Name    string
	Address Address
	Phone   string
	Email   string
	Notes   string
}

// Typed は会社の種別名を返す能力を表します。
type Typed interface {
	TypeName() string
}

// NewCompany は共有部分を生成します。フィールドを固定順に検証し、
// 最初の違反で中断します。Notes は任意で検証されません。
func NewCompany(name string, addr Address, phone, email, notes string) (Company, error) {
	var c Company
	if err := c.SetName(name); err != nil {
		return Company{}, err
	}
	if err := c.SetAddress(addr); err != nil {
		return Company{}, err
	}
	if err := c.SetPhone(phone); err != nil {
		return Company{}, err
	}
	if err := c.SetEmail(email); err != nil {
		return Company{}, err
	}
	c.SetNotes(notes)
	return c, nil
}

// SetName は raison sociale を設定します。空白のみは拒否します。
func (c *Company) SetName(v string) error {
	if validation.IsBlank(v) {
		return NewValidationError("raisonSociale", "La raison sociale est obligatoire")
	}
	c.Name = v
	return nil
}

// SetAddress は所在地を設定します。未設定の Address は拒否します。
func (c *Company) SetAddress(a Address) error {
	if a == (Address{}) {
		return NewValidationError("adresse", "L'adresse est obligatoire")
	}
	c.Address = a
	return nil
}

// SetPhone は電話番号を設定します。フランスの形式以外は拒否します。
func (c *Company) SetPhone(v string) error {
	if !validation.IsPhone(v) {
		return NewValidationError("telephone", "Le format du téléphone est invalide")
	}
	c.Phone = v
	return nil
}

// SetEmail はメールアドレスを設定します。形式違反は拒否します。
func (c *Company) SetEmail(v string) error {
	if !validation.IsEmail(v) {
		return NewValidationError("email", "Le format de l'email est invalide")
	}
	c.Email = v
	return nil
}

// SetNotes は自由記述のコメントを設定します。空でも構いません。
func (c *Company) SetNotes(v string) {
	c.Notes = v
}
