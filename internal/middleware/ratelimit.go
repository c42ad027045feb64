package middleware

import (
	"net"
	"net/http"
	"time"

	"crypto_casino/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit - ограничение частоты запросов по IP: фиксированное окно на
// redis-счетчике. При недоступном redis лимитер деградирует и пропускает запрос
func RateLimit(rdb *redis.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rdb == nil || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			key := "ratelimit:" + ip
			ctx := r.Context()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("redis not available, skip rate limit", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, key, window)
			}

			if count > int64(limit) {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
