// Package push отправляет push-уведомления через внешнего провайдера.
package push

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrProviderDisabled возвращается, когда провайдер не настроен
var ErrProviderDisabled = errors.New("push provider is not configured")

// Message - мультикаст-сообщение на набор токенов устройств
type Message struct {
	Tokens []string
	Title  string
	Body   string
	Data   map[string]string
}

// BatchResult - число успешных и неудачных доставок по получателям
type BatchResult struct {
	SuccessCount int
	FailureCount int
}

// Provider - контракт провайдера push-доставки
type Provider interface {
	SendMulticast(ctx context.Context, msg *Message) (*BatchResult, error)
}

// DisabledProvider используется, когда учетные данные провайдера не заданы
type DisabledProvider struct {
	logger *logrus.Logger
}

func NewDisabledProvider(logger *logrus.Logger) *DisabledProvider {
	return &DisabledProvider{logger: logger}
}

func (p *DisabledProvider) SendMulticast(_ context.Context, msg *Message) (*BatchResult, error) {
	p.logger.WithField("tokens", len(msg.Tokens)).Warn("Push provider is not configured. Skipping delivery.")
	return nil, ErrProviderDisabled
}
