package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xspring/internal/adapters/logger"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewObserver_SlogLoggerObservesItself(t *testing.T) {
	lg := logger.New()

	obs := logger.NewObserver(lg)

	assert.Same(t, lg, obs)
}

func TestNewObserver_FlattensEventsForOtherLoggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("request finalized event=request_finalized base_dir=demo dependencies=2")

	obs := logger.NewObserver(log)
	obs.Observe(domain.NewEvent(domain.EventRequestFinalized, "request finalized", map[string]any{
		"dependencies": 2,
		"base_dir":     "demo",
	}))
}
