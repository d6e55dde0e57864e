// redact предоставляет утилиты редактирования чувствительных данных для логов.
// Главный случай news-api — общий секрет auth_key, приходящий в query string:
// он не должен попадать в логи ни целиком, ни частично.
package redact

import (
	"net/url"
	"strings"
)

// SecretPlaceholder — литерал-заглушка вместо секрета.
const SecretPlaceholder = "[REDACTED_SECRET]"

// QueryKeys — параметры query string, значения которых всегда маскируются.
var QueryKeys = []string{"auth_key"}

// Query маскирует значения чувствительных параметров в сыром query string.
//
// Правила:
//   - порядок и написание прочих параметров сохраняются как есть;
//   - имя параметра сравнивается после url-декодирования ("auth%5Fkey" тоже маскируется);
//   - к QueryKeys добавляются extra;
//   - параметр без '=' с чувствительным именем тоже получает заглушку.
//
// Пример:
//
//	"auth_key=s3cr3t&tags=Sports" -> "auth_key=[REDACTED_SECRET]&tags=Sports"
func Query(raw string, extra ...string) string {
	if raw == "" {
		return ""
	}

	parts := strings.Split(raw, "&")
	for i, part := range parts {
		name, _, _ := strings.Cut(part, "=")

		decoded, err := url.QueryUnescape(name)
		if err != nil {
			decoded = name
		}

		if isSensitive(decoded, extra) {
			parts[i] = name + "=" + SecretPlaceholder
		}
	}

	return strings.Join(parts, "&")
}

func isSensitive(name string, extra []string) bool {
	for _, k := range QueryKeys {
		if name == k {
			return true
		}
	}

	for _, k := range extra {
		if name == k {
			return true
		}
	}

	return false
}
