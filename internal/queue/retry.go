package queue

import (
	"github.com/histomap/backend/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// maxRetries is how often a message bounces through the retry queue before
// it lands in the dead-letter queue.
const maxRetries = 10

// RetryCount reads the x-retries header from a delivery. Brokers hand the
// value back with varying integer widths depending on who published it.
func RetryCount(headers amqp.Table) int {
	val, ok := headers["x-retries"]
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// nextRetryHeaders returns the headers for the next retry attempt,
// incrementing x-retries in place.
func nextRetryHeaders(headers amqp.Table) amqp.Table {
	if headers == nil {
		headers = amqp.Table{}
	}
	headers["x-retries"] = int32(RetryCount(headers) + 1)
	return headers
}

// exhausted reports whether a message with the given retry count should go
// to the dead-letter queue instead of another retry round.
func exhausted(retries int) bool {
	return retries >= maxRetries
}

// HandleProcessingError routes a failed delivery to the queue's retry
// companion, or to the dead-letter queue once retries are exhausted.
func HandleProcessingError(ch *amqp.Channel, msg amqp.Delivery, queueName string) {
	retries := RetryCount(msg.Headers)

	if exhausted(retries) {
		dlqName := queueName + "_dlq"
		logger.Info("Sending message to DLQ", "dlq", dlqName)
		pubErr := ch.Publish(
			"",
			dlqName,
			false,
			false,
			amqp.Publishing{
				ContentType: "text/plain",
				Body:        msg.Body,
				Headers:     msg.Headers,
			},
		)
		if pubErr != nil {
			logger.Error("Failed to publish to DLQ", "dlq", dlqName, "err", pubErr)
			msg.Nack(false, true)
			return
		}
		msg.Ack(false)
		return
	}

	retryName := queueName + "_retry"
	logger.Info("Sending message to retry queue", "queue", retryName, "attempt", retries+1)
	pubErr := ch.Publish(
		"",
		retryName,
		false,
		false,
		amqp.Publishing{
			ContentType: "text/plain",
			Body:        msg.Body,
			Headers:     nextRetryHeaders(msg.Headers),
		},
	)
	if pubErr != nil {
		logger.Error("Failed to publish to retry queue", "queue", retryName, "err", pubErr)
		msg.Nack(false, true)
		return
	}
	msg.Ack(false)
}
