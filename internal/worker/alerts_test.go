package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"deal_market/internal/worker"
)

type fakeComposer struct {
	text string
	err  error
}

func (f fakeComposer) ComposeMessage(context.Context, string) (string, error) {
	return f.text, f.err
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendDealMessage(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, text)

	return nil
}

func TestHandleDealAlert(t *testing.T) {
	rq := require.New(t)

	sender := &fakeSender{}
	handler := worker.NewAlertHandler(fakeComposer{text: "hot deal"}, sender)

	task := asynq.NewTask(worker.TypeDealAlert, []byte(`{"deal_id":"deal-1"}`))

	rq.NoError(handler.HandleDealAlert(context.Background(), task))
	rq.Equal([]string{"hot deal"}, sender.sent)
}

func TestHandleDealAlertBadPayload(t *testing.T) {
	rq := require.New(t)

	handler := worker.NewAlertHandler(fakeComposer{}, &fakeSender{})

	task := asynq.NewTask(worker.TypeDealAlert, []byte(`{broken`))

	err := handler.HandleDealAlert(context.Background(), task)
	rq.Error(err)
	rq.True(errors.Is(err, asynq.SkipRetry))
}

func TestHandleDealAlertComposeFails(t *testing.T) {
	rq := require.New(t)

	sender := &fakeSender{}
	handler := worker.NewAlertHandler(fakeComposer{err: errors.New("deal not found")}, sender)

	task := asynq.NewTask(worker.TypeDealAlert, []byte(`{"deal_id":"missing"}`))

	err := handler.HandleDealAlert(context.Background(), task)
	rq.Error(err)
	rq.False(errors.Is(err, asynq.SkipRetry))
	rq.Empty(sender.sent)
}

func TestHandleDealAlertSendFails(t *testing.T) {
	rq := require.New(t)

	sender := &fakeSender{err: errors.New("telegram unavailable")}
	handler := worker.NewAlertHandler(fakeComposer{text: "hot deal"}, sender)

	task := asynq.NewTask(worker.TypeDealAlert, []byte(`{"deal_id":"deal-1"}`))

	rq.Error(handler.HandleDealAlert(context.Background(), task))
}
