package check_availability

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден или неактивен
	ErrSalonNotFound = errors.New("check_availability: salon not found")

	// ErrInvalidSlot возвращается, когда запрошенное время не является
	// сгенерированным слотом для салона и даты
	ErrInvalidSlot = errors.New("check_availability: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
