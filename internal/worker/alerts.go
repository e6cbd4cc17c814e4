package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"deal_market/pkg/contextx"
)

// TypeDealAlert — тип задачи исходящего оповещения о предложении.
// Движок сам ничего не планирует: задачу ставит вызывающий код
// (HTTP-слой или чекаут), воркер только доставляет.
const TypeDealAlert = "deal:alert"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type DealAlertPayload struct {
	DealID string `json:"deal_id"`
}

type MessageComposer interface {
	ComposeMessage(ctx context.Context, dealID string) (string, error)
}

type MessageSender interface {
	SendDealMessage(ctx context.Context, text string) error
}

// Дедупликация повторных оповещений: сообщение по предложению пересобирается
// не чаще раза в минуту, как и обратный отсчёт на витрине.
const alertDedupeTTL = time.Minute

// AlertEnqueuer кладёт задачи оповещения в очередь.
type AlertEnqueuer struct {
	client *asynq.Client
	redis  *redis.Client
}

func NewAlertEnqueuer(client *asynq.Client, redisClient *redis.Client) *AlertEnqueuer {
	return &AlertEnqueuer{
		client: client,
		redis:  redisClient,
	}
}

func (e *AlertEnqueuer) EnqueueDealAlert(ctx context.Context, dealID string) error {
	if e.redis != nil {
		fresh, err := e.redis.SetNX(ctx, "deal:alert:dedupe:"+dealID, 1, alertDedupeTTL).Result()
		if err != nil {
			logger(ctx).Warn("alert dedupe check failed, enqueueing anyway", "deal_id", dealID, "error", err)
		} else if !fresh {
			logger(ctx).Info("deal alert skipped, sent recently", "deal_id", dealID)
			return nil
		}
	}

	payload, err := json.Marshal(DealAlertPayload{DealID: dealID})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeDealAlert, payload)

	info, err := e.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue: %w", err)
	}

	logger(ctx).Info("deal alert enqueued",
		"deal_id", dealID,
		"task_id", info.ID,
		"queue", info.Queue,
	)

	return nil
}

// AlertHandler собирает текст предложения и отправляет его в канал.
type AlertHandler struct {
	composer MessageComposer
	sender   MessageSender
}

func NewAlertHandler(composer MessageComposer, sender MessageSender) *AlertHandler {
	return &AlertHandler{
		composer: composer,
		sender:   sender,
	}
}

func (h *AlertHandler) HandleDealAlert(ctx context.Context, task *asynq.Task) error {
	var payload DealAlertPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// Мусорный payload ретраить бессмысленно.
		return fmt.Errorf("unmarshal payload: %w: %w", err, asynq.SkipRetry)
	}

	text, err := h.composer.ComposeMessage(ctx, payload.DealID)
	if err != nil {
		return fmt.Errorf("compose message: %w", err)
	}

	if err := h.sender.SendDealMessage(ctx, text); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	logger(ctx).Info("deal alert delivered", "deal_id", payload.DealID)

	return nil
}
