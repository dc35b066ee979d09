package gateway

import "errors"

var (
	// ErrUnauthenticated возвращается для защищённых операций без токена
	ErrUnauthenticated = errors.New("gateway: authentication required")

	// ErrValidation возвращается при отсутствии обязательных входных данных
	ErrValidation = errors.New("gateway: invalid request input")

	// ErrNetwork возвращается, когда backend не ответил вообще
	ErrNetwork = errors.New("gateway: no response from backend")

	// ErrUpstream возвращается, когда backend ответил не-2xx статусом
	ErrUpstream = errors.New("gateway: backend error")
)
