package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	key := os.Getenv("POKEDEX_FAVORITES_KEY")
	if key == "" {
		key = "pokemonFavorites"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Printf("Checking favorites stored under %q...\n", key)

	data, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		fmt.Println("No favorites stored, nothing to check.")
		return
	}
	if err != nil {
		log.Fatal("Failed to read favorites:", err)
	}

	// Decode loosely so non-integer entries can be reported instead of failing
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		fmt.Printf("✗ Stored value is not a JSON array: %s\n", data)
		confirm("DELETE the corrupted value", func() {
			if err := client.Del(ctx, key).Err(); err != nil {
				fmt.Printf("Failed to delete %s: %v\n", key, err)
				return
			}
			fmt.Printf("Deleted %s\n", key)
		})
		return
	}

	cleaned := make([]int, 0, len(raw))
	seen := make(map[int]struct{}, len(raw))
	var dropped int
	for _, entry := range raw {
		var id int
		if err := json.Unmarshal(entry, &id); err != nil || id <= 0 {
			fmt.Printf("✗ Invalid entry: %s\n", entry)
			dropped++
			continue
		}
		if _, dup := seen[id]; dup {
			fmt.Printf("✗ Duplicate id: %d\n", id)
			dropped++
			continue
		}
		seen[id] = struct{}{}
		cleaned = append(cleaned, id)
	}

	fmt.Printf("\nChecked %d entries, found %d to drop\n", len(raw), dropped)
	if dropped == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	confirm(fmt.Sprintf("rewrite favorites as %v", cleaned), func() {
		encoded, err := json.Marshal(cleaned)
		if err != nil {
			fmt.Printf("Failed to encode favorites: %v\n", err)
			return
		}
		if err := client.Set(ctx, key, encoded, 0).Err(); err != nil {
			fmt.Printf("Failed to write %s: %v\n", key, err)
			return
		}
		fmt.Println("\nCleanup complete!")
	})
}

// confirm runs apply only when the operator answers yes
func confirm(action string, apply func()) {
	fmt.Printf("\nDo you want to %s? (yes/no): ", action)
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}
	apply()
}
