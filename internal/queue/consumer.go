package queue

import (
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// StartShipmentConsumer connects to RabbitMQ, declares the shipment.created
// and shipment.status queues (durable), and starts consuming messages. Each
// message is appended to logs/shipments.log in a single-line, human-friendly
// format. The function runs a reconnect loop with exponential backoff and
// keeps running indefinitely; processing errors are logged and the offending
// message rejected so the server continues operating.
func StartShipmentConsumer() error {
    url := brokerURL()

    backoff := time.Second
    for {
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("shipment-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        if err := consumeLoop(conn); err != nil {
            log.Printf("shipment-consumer: consume loop ended: %v; reconnecting", err)
            time.Sleep(2 * time.Second)
            continue
        }
    }
}

func consumeLoop(conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("shipment-consumer: set QoS failed: %v", err)
    }

    for _, name := range []string{createdQueueName, statusQueueName} {
        if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
            return fmt.Errorf("queue declare %s: %w", name, err)
        }
    }

    created, err := ch.Consume(createdQueueName, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume %s: %w", createdQueueName, err)
    }
    status, err := ch.Consume(statusQueueName, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume %s: %w", statusQueueName, err)
    }

    for {
        select {
        case d, ok := <-created:
            if !ok {
                return errors.New("created deliveries channel closed")
            }
            ackOrReject(d, handleCreated(d.Body))
        case d, ok := <-status:
            if !ok {
                return errors.New("status deliveries channel closed")
            }
            ackOrReject(d, handleStatus(d.Body))
        }
    }
}

func ackOrReject(d amqp.Delivery, err error) {
    if err != nil {
        log.Printf("shipment-consumer: handle message failed: %v", err)
        _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
        return
    }
    _ = d.Ack(false)
}

func handleCreated(body []byte) error {
    var ev ShipmentCreatedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    line := fmt.Sprintf("[%s] Shipment created | shipment_id=%s | tracking=%s | user_id=%s | receiver=%q | destination=\"%s, %s\" | package=%q | weight=%.2fkg\n",
        ev.CreatedAt, ev.ShipmentID, ev.TrackingNumber, ev.UserID, ev.ReceiverName, ev.ReceiverCity, ev.ReceiverCountry, ev.PackageType, ev.PackageWeight)
    return appendLog(line)
}

func handleStatus(body []byte) error {
    var ev ShipmentStatusUpdatedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    line := fmt.Sprintf("[%s] Shipment status updated | shipment_id=%s | tracking=%s | user_id=%s | status=%s -> %s\n",
        ev.UpdatedAt, ev.ShipmentID, ev.TrackingNumber, ev.UserID, ev.PreviousStatus, ev.Status)
    return appendLog(line)
}

func appendLog(line string) error {
    if err := os.MkdirAll("logs", 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    fpath := filepath.Join("logs", "shipments.log")
    f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}
