package worker

import (
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// asynqRedisOpt mirrors an existing go-redis client into the option struct
// asynq wants, so both sides share one redis configuration.
func asynqRedisOpt(redis *redis.Client) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     redis.Options().Addr,
		Password: redis.Options().Password,
		DB:       redis.Options().DB,
	}
}
