package model

import "time"

// ShipmentStatus enumerates the five lifecycle states of a shipment.
// Status updates validate membership in this set only; there is no
// transition graph, so an admin may move a shipment between any two
// states (including delivered back to pending).
type ShipmentStatus string

const (
    StatusPending        ShipmentStatus = "pending"
    StatusInTransit      ShipmentStatus = "in_transit"
    StatusOutForDelivery ShipmentStatus = "out_for_delivery"
    StatusDelivered      ShipmentStatus = "delivered"
    StatusCancelled      ShipmentStatus = "cancelled"
)

// ParseShipmentStatus validates a raw status string against the enumeration.
func ParseShipmentStatus(s string) (ShipmentStatus, bool) {
    switch ShipmentStatus(s) {
    case StatusPending, StatusInTransit, StatusOutForDelivery, StatusDelivered, StatusCancelled:
        return ShipmentStatus(s), true
    }
    return "", false
}

// OwnerSummary is the slim user projection embedded in shipment responses
// so that clients can show who created a shipment without a second lookup.
type OwnerSummary struct {
    ID    string `json:"id"`
    Name  string `json:"name"`
    Email string `json:"email"`
}

// Shipment represents a tracked package as stored in the `shipments` table.
//
// Fields:
//  ID               – primary key (UUID string).
//  TrackingNumber   – unique public lookup key, stable for the record's lifetime.
//  Sender*/Receiver* – free-text party details.
//  PackageWeight    – weight in kilograms.
//  PackageType      – free-text package category.
//  Status           – one of the five lifecycle states.
//  EstimatedDelivery – optional delivery estimate (nullable).
//  UserID           – owning user (FK into users).
//  CreatedAt        – creation timestamp.
//  UpdatedAt        – last update timestamp.
type Shipment struct {
    ID                string         `json:"id"`
    TrackingNumber    string         `json:"trackingNumber"`
    SenderName        string         `json:"senderName"`
    SenderAddress     string         `json:"senderAddress"`
    SenderCity        string         `json:"senderCity"`
    SenderZipCode     string         `json:"senderZipCode"`
    SenderCountry     string         `json:"senderCountry"`
    ReceiverName      string         `json:"receiverName"`
    ReceiverAddress   string         `json:"receiverAddress"`
    ReceiverCity      string         `json:"receiverCity"`
    ReceiverZipCode   string         `json:"receiverZipCode"`
    ReceiverCountry   string         `json:"receiverCountry"`
    PackageWeight     float64        `json:"packageWeight"`
    PackageType       string         `json:"packageType"`
    Status            ShipmentStatus `json:"status"`
    EstimatedDelivery *time.Time     `json:"estimatedDelivery"`
    UserID            string         `json:"userId"`
    User              OwnerSummary   `json:"user"`
    CreatedAt         time.Time      `json:"createdAt"`
    UpdatedAt         time.Time      `json:"updatedAt"`
}

// ShipmentStats aggregates per-status counts for the dashboard. The
// out_for_delivery state is counted in Total but has no dedicated field,
// matching the dashboard contract.
type ShipmentStats struct {
    Total     int64 `json:"total"`
    Pending   int64 `json:"pending"`
    InTransit int64 `json:"inTransit"`
    Delivered int64 `json:"delivered"`
    Cancelled int64 `json:"cancelled"`
}
