package ws

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/soccer-picks-poc/pkg/contracts/events"
)

// StartRedisSubscriber inicia uma goroutine que escuta o canal Redis Pub/Sub
// e repassa as liquidações recebidas para todos os clientes WebSocket conectados via Hub
//
// O canal deve ser o mesmo usado pelo results-settler ao publicar (REDIS_PUBSUB_CHANNEL)
//
// Funcionamento:
// - Recebe mensagens JSON do canal Redis (eventos PickSettled publicados pelo results-settler)
// - Desserializa e monta um SettledUpdate endereçado pelo fixtureID
// - Chama hub.Broadcast para enviar aos clientes inscritos
func StartRedisSubscriber(ctx context.Context, r *redis.Client, channel string, hub *Hub) {
	sub := r.Subscribe(ctx, channel)
	ch := sub.Channel()
	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close() // encerra a inscrição ao finalizar o contexto
				return
			case msg := <-ch:
				if msg == nil {
					continue
				}
				DispatchSettled(hub, []byte(msg.Payload))
			}
		}
	}()
}

// DispatchSettled desserializa um evento PickSettled e repassa ao hub,
// endereçado pelo fixtureID do evento
func DispatchSettled(hub *Hub, payload []byte) {
	var ev events.PickSettled
	if err := json.Unmarshal(payload, &ev); err != nil {
		log.Printf("ws subscriber unmarshal error: %v", err)
		return
	}
	hub.Broadcast(SettledUpdate{
		FixtureID: strconv.FormatInt(ev.FixtureID, 10),
		Payload:   ev,
	}) // envia a liquidação para todos os clientes inscritos
}
