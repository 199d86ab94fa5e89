package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/queue"
	"go.uber.org/zap"
)

// MenuSavedProcessor consumes a decoded menu-saved event.
type MenuSavedProcessor interface {
	ProcessMenuSavedEvent(ctx context.Context, event domain.MenuSavedEvent) error
}

type MenuSaveAuditWorker struct {
	processor MenuSavedProcessor
	broker    queue.Broker
	logger    *zap.SugaredLogger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewMenuSaveAuditWorker(
	processor MenuSavedProcessor,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *MenuSaveAuditWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &MenuSaveAuditWorker{
		processor: processor,
		broker:    broker,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (w *MenuSaveAuditWorker) Start() error {
	w.logger.Info("starting menu save audit worker")

	return w.broker.Subscribe(w.ctx, queue.QueueMenuSaved, w.handleMessage)
}

func (w *MenuSaveAuditWorker) Stop() {
	w.logger.Info("stopping menu save audit worker")
	w.cancel()
}

func (w *MenuSaveAuditWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.MenuSavedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing menu saved event", "restaurant_id", event.RestaurantID, "event_type", event.EventType)

	if err := w.processor.ProcessMenuSavedEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process menu saved event", "restaurant_id", event.RestaurantID, "error", err)
		return err
	}

	return nil
}
