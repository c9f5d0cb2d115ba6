package model

import "errors"

var (
	// ErrValidation : запрос некорректен, внешние вызовы не выполнялись
	ErrValidation = errors.New("ошибка валидации запроса")

	// ErrUpstreamLookup : не удалось получить координаты полей для формы.
	// Не фатальна: подписанты формы получают пустые наборы вкладок
	ErrUpstreamLookup = errors.New("ошибка получения координат полей")

	// ErrUpstreamGeneration : движок форм не сгенерировал документы, конверт не отправляется
	ErrUpstreamGeneration = errors.New("ошибка генерации документов")

	ErrUpstreamSubmission = errors.New("ошибка отправки конверта провайдеру")
	ErrStatusSnapshot     = errors.New("ошибка получения состояния конверта")
	ErrProviderRequest    = errors.New("ошибка запроса к провайдеру подписи")

	ErrAccountNotFound = errors.New("аккаунт провайдера не найден")
	ErrNoAccounts      = errors.New("нет подключенных аккаунтов провайдера")
	ErrCredentials     = errors.New("не удалось получить доступ к провайдеру")
)

// ValidationError : описание ошибки валидации для клиента
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
