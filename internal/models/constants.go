package models

const (
	// DateLayout формат календарной даты, который отдаёт backend
	DateLayout = "2006-01-02"

	// DefaultSessionTTL время жизни сессии в Redis
	DefaultSessionTTL = 30 * 24 * 60 * 60 // 30 дней в секундах

	// DefaultExportBatchSize размер пачки заявок на один файл экспорта
	DefaultExportBatchSize = 500

	// WorkerQueueSize размер очереди воркера экспорта
	WorkerQueueSize = 256
)
