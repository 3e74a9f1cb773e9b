package domain

// Store acknowledgments. The API returns these instead of the stored
// documents, mirroring the driver result shapes clients already consume.

type InsertAck struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateAck struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UserCreateResult is the response to a user insert. When the email is
// already present, Message is set and InsertedID stays null; no duplicate
// row is written.
type UserCreateResult struct {
	Message      string `json:"message,omitempty"`
	Acknowledged bool   `json:"acknowledged,omitempty"`
	InsertedID   any    `json:"insertedId"`
}

// PaymentReceipt bundles both acknowledgments of the record-then-purge
// sequence: the payment insert and the bulk cart delete.
type PaymentReceipt struct {
	PaymentResult *InsertAck `json:"paymentResult"`
	DeleteResult  *DeleteAck `json:"deleteResult"`
}
