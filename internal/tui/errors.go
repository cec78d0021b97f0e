// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// humanizeError turns well-known vault errors into short user messages.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrCrypto):
		return "Файл повреждён или зашифрован другим ключом"
	case errors.Is(err, store.ErrRecordNotFound), errors.Is(err, store.ErrObjectNotFound):
		return "Файл не найден в хранилище"
	case errors.Is(err, store.ErrCatalogWrite):
		return "Не удалось сохранить каталог метаданных"
	case errors.Is(err, service.ErrSourceNotFound):
		return "Исходный путь не найден"
	case errors.Is(err, models.ErrUnknownPanel):
		return "Неизвестная панель"
	}
	return err.Error()
}
