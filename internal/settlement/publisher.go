package settlement

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/soccer-picks-poc/pkg/contracts/events"
)

// KafkaPublisher publica eventos pick_settled, com DLQ opcional pra
// mensagens que falharem na publicação principal.
type KafkaPublisher struct {
	writer *kafka.Writer
	dlq    *kafka.Writer
	log    *zap.Logger
}

func NewKafkaPublisher(writer, dlq *kafka.Writer, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, dlq: dlq, log: log}
}

// PublishPickSettled envia o evento com chave por pick; em caso de falha,
// tenta desviar a mensagem pra DLQ antes de devolver o erro.
func (p *KafkaPublisher) PublishPickSettled(ctx context.Context, e events.PickSettled) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(e.PickID),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("failed to publish pick settled", zap.Error(err))
		if p.dlq != nil {
			if derr := p.dlq.WriteMessages(ctx, msg); derr != nil {
				p.log.Error("failed to publish to DLQ", zap.Error(derr))
			}
		}
		return err
	}

	return nil
}
