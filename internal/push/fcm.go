package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// fcmMaxTokens - предел токенов в одном мультикаст-запросе FCM
const fcmMaxTokens = 500

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// FCMProvider доставляет сообщения через Firebase Cloud Messaging
type FCMProvider struct {
	client multicastSender
}

// NewFCMProvider создает клиента FCM по файлу учетных данных сервисного аккаунта
func NewFCMProvider(ctx context.Context, credentialsFile string) (*FCMProvider, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init firebase messaging: %w", err)
	}
	return &FCMProvider{client: client}, nil
}

// SendMulticast отправляет сообщение пачками по 500 токенов. Ошибка любой пачки
// возвращается как ошибка всего вызова.
func (p *FCMProvider) SendMulticast(ctx context.Context, msg *Message) (*BatchResult, error) {
	result := &BatchResult{}
	for start := 0; start < len(msg.Tokens); start += fcmMaxTokens {
		end := min(start+fcmMaxTokens, len(msg.Tokens))

		resp, err := p.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: msg.Tokens[start:end],
			Data:   msg.Data,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("fcm multicast failed: %w", err)
		}
		result.SuccessCount += resp.SuccessCount
		result.FailureCount += resp.FailureCount
	}
	return result, nil
}
