package request

import (
	"time"
)

// ServiceRequest is the shape shared by every reviewable record in the
// marketplace: orders, clinic services, equipment listings, job postings and
// so on. Entity-specific payload fields are optional; absent fields stay at
// their zero value.
type ServiceRequest struct {
	RequestID     int        `json:"requestId"`
	RequestNumber string     `json:"requestNumber"`
	StatusID      Status     `json:"statusId"`
	StatusName    string     `json:"statusName,omitempty"`
	Title         string     `json:"title,omitempty"`
	ContactName   string     `json:"contactName,omitempty"`
	ContactPhone  string     `json:"contactPhone,omitempty"`
	City          string     `json:"city,omitempty"`
	Quantity      int        `json:"quantity,omitempty"`
	Price         float64    `json:"price,omitempty"`
	MediaPath     string     `json:"mediaPath,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	CreatedDate   *time.Time `json:"createdDate"`
	UpdatedDate   *time.Time `json:"updatedDate"`
}

// IsNil returns true if the record carries no identity.
func (r ServiceRequest) IsNil() bool {
	return r.RequestID == 0 && r.RequestNumber == ""
}

// DisplayStatus prefers the server-computed status name and falls back to the
// local enumeration.
func (r ServiceRequest) DisplayStatus() string {
	if r.StatusName != "" {
		return r.StatusName
	}
	return r.StatusID.String()
}
