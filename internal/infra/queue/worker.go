package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/mlecomte/urbanstyle/internal/usecase"
)

// Worker consome jobs de enriquecimento. Um job por vez: o pipeline já é
// sequencial por natureza e duas passadas concorrentes reescreveriam o mesmo
// arquivo.
type Worker struct {
	Channel  *amqp.Channel
	Enricher *usecase.Enricher
}

func NewWorker(ch *amqp.Channel, enricher *usecase.Enricher) *Worker {
	return &Worker{Channel: ch, Enricher: enricher}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job usecase.EnrichmentJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("⚙️ [WORKER] Job d'enrichissement reçu (demandé par %s)", job.RequestedBy)

			result, err := w.Enricher.EnrichAll(context.Background())
			if err != nil {
				log.Printf("❌ [WORKER] Enrichissement échoué: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("✅ [WORKER] %d prospects enrichis", result.EnrichedCount)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker en attente sur la file '%s'", queueName)
	<-forever
}
