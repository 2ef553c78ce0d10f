package models

// InsertResult mirrors the driver's insert acknowledgement.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// Page selects a window of a listing. A nil *Page means the whole collection.
type Page struct {
	Number int64
	Size   int64
}

func (p Page) Skip() int64 {
	return p.Number * p.Size
}

// PaymentIntentRequest is the checkout payload from the client.
type PaymentIntentRequest struct {
	Price *Number `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
