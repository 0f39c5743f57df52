package contract

import "errors"

var (
	// ErrContractNotFound は対象の契約が存在しない場合に返されます。
	ErrContractNotFound = errors.New("contract: not found")
	// ErrClientNotFound は所属先クライアントが存在しない場合に返されます。
	ErrClientNotFound = errors.New("contract: client not found")
)
