// Package queue defines message payloads exchanged over the message broker,
// the publisher used by the shipment lifecycle, and the background consumer
// that turns events into the shipment event log.
package queue

// ShipmentCreatedEvent is published when a shipment is successfully created.
// It contains enough information for downstream consumers to log or notify
// without querying the primary database.
type ShipmentCreatedEvent struct {
    ShipmentID     string  `json:"shipment_id"`
    TrackingNumber string  `json:"tracking_number"`
    UserID         string  `json:"user_id"`
    ReceiverName   string  `json:"receiver_name"`
    ReceiverCity   string  `json:"receiver_city"`
    ReceiverCountry string `json:"receiver_country"`
    PackageType    string  `json:"package_type"`
    PackageWeight  float64 `json:"package_weight"`
    CreatedAt      string  `json:"created_at"`
}

// ShipmentStatusUpdatedEvent is published when an admin moves a shipment to
// a new status. PreviousStatus may equal Status when an admin re-applies the
// current state.
type ShipmentStatusUpdatedEvent struct {
    ShipmentID     string `json:"shipment_id"`
    TrackingNumber string `json:"tracking_number"`
    UserID         string `json:"user_id"`
    PreviousStatus string `json:"previous_status"`
    Status         string `json:"status"`
    UpdatedAt      string `json:"updated_at"`
}
