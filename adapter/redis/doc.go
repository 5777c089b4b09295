// Package redis provides an adapter.Adapter implementation backed by Redis.
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//
//	vault := filevault.New(redisadapter.New(client,
//	    redisadapter.WithKeyPrefix("filevault:"),
//	    redisadapter.WithTTL(24*time.Hour),
//	))
//
// Redis suits small, hot records shared across processes. Note that a TTL
// turns deletes racy: a record can expire between a load and the delete.
package redis
