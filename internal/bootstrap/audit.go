package bootstrap

import "context"

// AuditLog adalah satu entri audit untuk kejadian level aplikasi
// (startup, shutdown, dsb), bukan log request biasa.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
