package config

import (
	"os"
	"strconv"
)

const (
	forwardReviewWindowEnv  = "REVIEW_WINDOW_FORWARD_PAGES"
	backwardReviewWindowEnv = "REVIEW_WINDOW_BACKWARD_PAGES"

	defaultForwardReviewWindow  = 10
	defaultBackwardReviewWindow = 9
)

// ScheduleConfig tunes derived display fields of the assembler. The review
// window sizes match the printed takhteet template and rarely change.
type ScheduleConfig struct {
	ForwardReviewWindowPages  int
	BackwardReviewWindowPages int
}

func LoadScheduleConfig() *ScheduleConfig {
	forward := defaultForwardReviewWindow
	if v := os.Getenv(forwardReviewWindowEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			forward = parsed
		}
	}

	backward := defaultBackwardReviewWindow
	if v := os.Getenv(backwardReviewWindowEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			backward = parsed
		}
	}

	return &ScheduleConfig{
		ForwardReviewWindowPages:  forward,
		BackwardReviewWindowPages: backward,
	}
}
