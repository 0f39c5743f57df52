package client

import "errors"

var (
	// ErrClientNotFound は対象クライアントが存在しない場合に返却されます。
	ErrClientNotFound = errors.New("client: not found")
)
