package models

import "errors"

var (
	// ErrNotFound возвращается репозиториями, когда запись отсутствует
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists возвращается при нарушении ограничения уникальности
	ErrAlreadyExists = errors.New("record already exists")
)
