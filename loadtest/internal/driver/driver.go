// Package driver fires schedule generation requests at a running instance
// and aggregates latency and status counts. Request bodies are derived
// deterministically from the run ID so repeated runs hit the service with
// the same workload.
package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

type Config struct {
	BaseURL     string
	RunID       string
	Requests    int
	Concurrency int
}

type Result struct {
	Requests     int
	StatusCounts map[int]int
	Errors       int
	MinLatency   time.Duration
	MaxLatency   time.Duration
	AvgLatency   time.Duration
}

var directions = []string{"forward", "backward"}
var paces = []string{"half", "full", "mixed"}

type generateBody struct {
	Student       string `json:"student"`
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Direction     string `json:"direction"`
	StartPage     int    `json:"start_page"`
	TargetPage    int    `json:"target_page"`
	Pace          string `json:"pace"`
	ExtraHolidays int    `json:"extra_holidays"`
	Revision      string `json:"revision"`
	CurrentJuz    int    `json:"current_juz,omitempty"`
}

// requestBody derives the i-th workload request from the run ID. The page
// span stays within one pace's reach of a typical month so most requests
// exercise the full generation path rather than the feasibility rejection.
func requestBody(runID string, i int) generateBody {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s-%d", runID, i)))
	r := binary.BigEndian.Uint64(h[:8])

	dir := directions[r%2]
	pace := paces[(r>>8)%3]
	month := int((r>>16)%12) + 1
	start := int((r>>24)%560) + 20
	span := int((r>>40)%12) + 2

	target := start + span
	if dir == "backward" {
		target = start - span
	}

	body := generateBody{
		Student:       fmt.Sprintf("load-%s", runID),
		Year:          2025,
		Month:         month,
		Direction:     dir,
		StartPage:     start,
		TargetPage:    target,
		Pace:          pace,
		ExtraHolidays: int((r >> 48) % 4),
		Revision:      "auto",
		CurrentJuz:    int((r>>52)%30) + 1,
	}
	return body
}

// Run executes the configured workload and blocks until every request has
// completed or the context is cancelled.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Requests <= 0 {
		return nil, fmt.Errorf("requests must be positive, got %d", cfg.Requests)
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}

	client := &http.Client{Timeout: 30 * time.Second}
	url := cfg.BaseURL + "/api/v1/schedule"

	var mu sync.Mutex
	result := &Result{
		Requests:     cfg.Requests,
		StatusCounts: make(map[int]int),
		MinLatency:   time.Duration(1<<63 - 1),
	}
	var totalLatency time.Duration

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				status, latency, err := fire(ctx, client, url, cfg.RunID, i)

				mu.Lock()
				if err != nil {
					result.Errors++
				} else {
					result.StatusCounts[status]++
					totalLatency += latency
					if latency < result.MinLatency {
						result.MinLatency = latency
					}
					if latency > result.MaxLatency {
						result.MaxLatency = latency
					}
				}
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < cfg.Requests; i++ {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return result, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if completed := cfg.Requests - result.Errors; completed > 0 {
		result.AvgLatency = totalLatency / time.Duration(completed)
	} else {
		result.MinLatency = 0
	}
	return result, nil
}

func fire(ctx context.Context, client *http.Client, url, runID string, i int) (int, time.Duration, error) {
	payload, err := json.Marshal(requestBody(runID, i))
	if err != nil {
		return 0, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Run-ID", fmt.Sprintf("%s-%d", runID, i))

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return 0, latency, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, latency, nil
}
