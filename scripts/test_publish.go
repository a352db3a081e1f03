//go:build ignore
// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type ReportSubmittedEvent struct {
	ReportID            string  `json:"report_id"`
	LocationLat         float64 `json:"location_lat"`
	LocationLng         float64 `json:"location_lng"`
	Category            string  `json:"category"`
	PlasticDensityIndex int     `json:"plastic_density_index"`
	ReportedBy          string  `json:"reported_by"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовое событие (Juhu Beach, Mumbai)
	event := ReportSubmittedEvent{
		ReportID:            uuid.NewString(),
		LocationLat:         19.0883,
		LocationLng:         72.8264,
		Category:            "Plastic",
		PlasticDensityIndex: 82,
		ReportedBy:          "Anonymous",
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:reports:submitted",
		Values: map[string]interface{}{
			"payload": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Published report event %s as message %s at %s\n",
		event.ReportID, result, time.Now().Format(time.RFC3339))
}
