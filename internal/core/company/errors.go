package company

import (
	"errors"
	"fmt"
)

// ValidationError は入力値が業務ルールに違反した場合に返却されます。
// Field には違反したフィールド名、Message には利用者向けの説明が入ります。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError は ValidationError を生成します。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError は err が ValidationError かどうかを判定します。
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
