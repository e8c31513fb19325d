package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Reply is an append-only entry in an inquiry's thread, ordered by insertion.
// Replies are never edited or removed once added.
type Reply struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Inquiry is owned exclusively by one product and carries its own ordered
// reply thread.
type Inquiry struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Replies   []Reply   `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
}

// InquiryList is stored as a JSONB column on the product row.
type InquiryList []Inquiry

func (l InquiryList) Value() (driver.Value, error) {
	if l == nil {
		l = InquiryList{}
	}
	return json.Marshal(l)
}

func (l *InquiryList) Scan(value interface{}) error {
	if value == nil {
		*l = InquiryList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into InquiryList", value)
	}
}
