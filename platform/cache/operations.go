package cache

import (
	"github.com/gomodule/redigo/redis"
)

// The cache is a fan-out channel for external consumers: the socket server
// publishes every event-log entry and mirrors the turn pointer here. The
// engine never reads game state back from redis.

// Publish sends a message on a pub/sub channel.
func Publish(channel string, message string, conn *redis.Conn) error {
	_, err := (*conn).Do("PUBLISH", channel, message)
	return err
}

// Set mirrors a small key (e.g. the current-turn pointer).
func Set(key string, value interface{}, conn *redis.Conn) bool {
	reply, err := redis.String((*conn).Do("SET", key, value))
	return err == nil && reply == "OK"
}

func Get(key string, conn *redis.Conn) (string, error) {
	return redis.String((*conn).Do("GET", key))
}

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}
