package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fleettrack/fleettrack/internal/pkg/redis"
)

// Ручная проверка Redis перед включением кэша подписей
// (REDIS_ENABLED=true). Запуск: go run ./scripts
func main() {
	fmt.Println("=========================================")
	fmt.Println("Redis Client Test")
	fmt.Println("=========================================")
	fmt.Println()

	client, err := redis.NewClient(redis.Config{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	if err != nil {
		fmt.Printf("FAIL: connect to Redis: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	fmt.Println("OK: connected to Redis")
	fmt.Println()

	ctx := context.Background()

	fmt.Println("Test 1: PING")
	if err := client.Ping(ctx); err != nil {
		fmt.Printf("FAIL: PING: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK: PING")
	fmt.Println()

	// Тот же жизненный цикл ключа, что у кэша подписей:
	// SET с TTL, GET, инвалидация через DEL
	fmt.Println("Test 2: SET/GET/DEL (signature cache lifecycle)")
	testKey := "signature:00000000-0000-0000-0000-000000000000"
	testValue := `{"name":"smoke test"}`

	if err := client.Set(ctx, testKey, testValue, 1*time.Minute); err != nil {
		fmt.Printf("FAIL: SET: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: SET %s\n", testKey)

	value, err := client.Get(ctx, testKey)
	if err != nil {
		fmt.Printf("FAIL: GET: %v\n", err)
		os.Exit(1)
	}
	if value != testValue {
		fmt.Printf("FAIL: GET returned wrong value: %s\n", value)
		os.Exit(1)
	}
	fmt.Printf("OK: GET %s\n", testKey)

	if err := client.Del(ctx, testKey); err != nil {
		fmt.Printf("FAIL: DEL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: DEL %s\n", testKey)

	if _, err := client.Get(ctx, testKey); err == nil {
		fmt.Println("FAIL: key still exists after DEL")
		os.Exit(1)
	}
	fmt.Println("OK: key gone after DEL")
	fmt.Println()

	fmt.Println("=========================================")
	fmt.Println("All tests passed")
	fmt.Println("=========================================")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
