package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// Review limits, carried over from the dashboard contract.
const (
	MinRating           = 1
	MaxRating           = 5
	MaxCommentLength    = 50
	MaxReviewImageBytes = 2 << 20 // 2 MiB
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has a basic local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Review is owned exclusively by one product; its id is only unique within
// that product's review list. At most one review per (product, user) pair.
type Review struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Email     string    `json:"email,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewList is stored as a JSONB column on the product row.
type ReviewList []Review

func (l ReviewList) Value() (driver.Value, error) {
	if l == nil {
		l = ReviewList{}
	}
	return json.Marshal(l)
}

func (l *ReviewList) Scan(value interface{}) error {
	if value == nil {
		*l = ReviewList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into ReviewList", value)
	}
}
