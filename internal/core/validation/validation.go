// Package validation はフィールド単位の検証述語を提供します。
//
// すべての関数は副作用を持たない純粋な述語で、エンティティのセッターと
// サービス層から共通に利用されます。
package validation

import (
	"regexp"
	"strings"
)

var (
	// フランスの郵便番号。数字ちょうど 5 桁。
	postalCodePattern = regexp.MustCompile(`^\d{5}$`)
	// ローカル部とドメインは限定した文字集合、TLD は 2 文字以上。
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	// フランスの固定・携帯電話。+33 / 00 33 / 0 いずれかの接頭辞に続き
	// 1〜9 の数字、その後 2 桁の組が 4 つ(空白・ドット・ハイフン区切り可)。
	phonePattern = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*\d{2}){4}$`)
)

// IsBlank は文字列が空、または空白文字のみかどうかを判定します。
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsPostalCode は s がフランスの郵便番号形式(数字 5 桁)かどうかを判定します。
func IsPostalCode(s string) bool {
	return postalCodePattern.MatchString(s)
}

// IsEmail は s がメールアドレス形式かどうかを判定します。
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPhone は s がフランスの電話番号形式かどうかを判定します。
func IsPhone(s string) bool {
	return phonePattern.MatchString(s)
}
