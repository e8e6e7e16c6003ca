package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

var RedisClient *redis.Client

func ConnectRedis(ctx context.Context, addr, password string, database int) error {
	if RedisClient != nil {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       database,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "erro ao conectar no redis")
	}
	RedisClient = client
	log.Info("Serviço conectado ao redis")
	return nil
}
