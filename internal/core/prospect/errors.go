package prospect

import "errors"

var (
	// ErrProspectNotFound は対象プロスペクトが存在しない場合に返却されます。
	ErrProspectNotFound = errors.New("prospect: not found")
)
