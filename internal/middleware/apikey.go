package middleware

import "net/http"

// apiKeyHeader — заголовок с анонимным ключом доступа к сервису.
const apiKeyHeader = "X-Api-Key"

// WithAPIKey отклоняет запросы без действующего анонимного ключа.
// Пустой key отключает проверку (локальная разработка).
func WithAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key != "" && r.Header.Get(apiKeyHeader) != key {
				logger.Warnw("request rejected: bad api key", "uri", r.RequestURI)
				http.Error(w, "invalid api key", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
