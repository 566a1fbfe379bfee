package repository

import "time"

// Audit groups the bookkeeping columns shared by every catalog table:
// who created the row, when, who last touched it and when. It is embedded
// in each entity record instead of being repeated per struct. The *_by
// fields are filled by the repository layer from the request actor; the
// timestamps come from DB defaults.
type Audit struct {
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdDate"`
	UpdatedBy string    `json:"modifiedBy,omitempty"`
	UpdatedAt time.Time `json:"modifiedDate"`
}
