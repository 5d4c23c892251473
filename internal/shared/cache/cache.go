// Package cache concentra a conexão com o Redis, usado como cache de
// leitura do picks-service e como canal Pub/Sub das liquidações.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis abre o client e valida a conexão com um PING.
func ConnectRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
