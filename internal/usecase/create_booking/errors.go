package create_booking

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден или неактивен
	ErrSalonNotFound = errors.New("create_booking: salon not found")

	// ErrInvalidSlot возвращается, когда запрошенное время не является
	// сгенерированным слотом для салона и даты (в том числе при попытке
	// бронирования в нерабочий день или внутри перерыва)
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotFull возвращается, когда вместимость слота исчерпана
	// на момент авторитетной проверки при записи
	ErrSlotFull = errors.New("create_booking: slot is fully booked")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
