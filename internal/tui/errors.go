// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-material-keeper/internal/service"
	"github.com/MKhiriev/go-material-keeper/internal/store"
)

const msgServerUnavailable = "Отсутствует сеть или Сервер недоступен"

var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrInvalidMaterialInput, "Некорректный ввод. Введите корректные числа."},
	{service.ErrMaterialNotSaved, "Ошибка при сохранении в базу данных."},
	{service.ErrHistoryNotLoaded, "Ошибка при загрузке истории."},
	{service.ErrWrongPassword, "Неверный логин или пароль"},
	{store.ErrLoginAlreadyExists, "Логин уже занят"},
	{service.ErrInvalidDataProvided, "Некорректный логин или пароль"},
	{service.ErrStorageUnavailable, "Хранилище сервера недоступно, попробуйте позже"},
	{service.ErrServerError, "Внутренняя ошибка сервера"},
}

// isSessionError reports whether err means the session can no longer be
// used and the user has to log in again.
func isSessionError(err error) bool {
	return errors.Is(err, service.ErrNotAuthenticated) ||
		errors.Is(err, service.ErrTokenIsExpired) ||
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid) ||
		errors.Is(err, store.ErrAccountNotFound)
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if isSessionError(err) {
		return "Сессия истекла, войдите заново"
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}
