package schedulerecorder

import (
	"context"

	"github.com/Murtaza813/Takhteet/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.GenerationRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordGeneration(_ context.Context, _ domain.GenerationRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
