package salons

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец салона
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSchedule возвращается, когда конфигурация расписания нарушает
	// инварианты (startTime >= endTime, перерыв вне рабочего окна и т.п.)
	ErrInvalidSchedule = errors.New("invalid schedule configuration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
