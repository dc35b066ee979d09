package payment

import "errors"

var (
	// ErrMissingClientSecret возвращается, когда backend не прислал секрет авторизации
	ErrMissingClientSecret = errors.New("payment: missing client secret in response")

	// ErrPaymentFailed возвращается при жёсткой ошибке процессора
	ErrPaymentFailed = errors.New("payment: charge failed")

	// ErrPaymentIncomplete возвращается при неоднозначном статусе процессора
	ErrPaymentIncomplete = errors.New("payment: charge not completed")

	// ErrBookingRecordFailed означает, что деньги списаны, а запись брони не создана.
	// Вызывающая сторона обязана показать это пользователю для сверки.
	ErrBookingRecordFailed = errors.New("payment: charge succeeded but booking record creation failed")
)
