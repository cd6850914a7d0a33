package service

import "errors"

// Сентинельные ошибки доменного слоя. Хендлеры отображают их в HTTP-статусы.
var (
	// ErrNotFound — запрошенная запись или комментарий не существует.
	ErrNotFound = errors.New("not found")

	// ErrForbidden — действие доступно только владельцу ресурса.
	ErrForbidden = errors.New("forbidden")

	// ErrEmptyContent — текст пуст после обрезки пробелов.
	ErrEmptyContent = errors.New("content is empty")

	// ErrUnknownCategory — категория вне фиксированного набора.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrLoginTaken — логин уже занят другим пользователем.
	ErrLoginTaken = errors.New("login already taken")

	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid login or password")
)
