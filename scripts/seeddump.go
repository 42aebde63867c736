// One-off: go run scripts/seeddump.go > data/orders.json
// Prints the demonstration snapshot for a given date (default today).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	dom "Hostess/internal/domain"
	"Hostess/internal/service"
)

func main() {
	date := time.Now().Format("2006-01-02")
	if len(os.Args) > 1 {
		date = os.Args[1]
	}
	bucket := dom.NewDayBucket()
	for _, it := range service.SeedItems() {
		bucket.Put(it)
	}
	snap := dom.Snapshot{date: bucket}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
}
