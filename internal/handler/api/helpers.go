package api

import (
	"net/http"
	"time"

	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/handler"
	"github.com/google/uuid"
)

// Date accepts "2006-01-02" as well as RFC 3339 timestamps.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return domain.Errorf(domain.EINVALID, "", "Dates must be strings")
	}
	s = s[1 : len(s)-1]

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return domain.Errorf(domain.EINVALID, "", "Invalid date %q", s)
	}
	d.Time = t
	return nil
}

// Ptr returns nil for an unset date.
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// withID parses {id} and calls fn, writing the error response on failure.
func withID(w http.ResponseWriter, r *http.Request, fn func(id uuid.UUID) error) {
	id, err := handler.PathUUID(r, "id")
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	if err := fn(id); err != nil {
		handler.Fail(w, r, err)
	}
}
