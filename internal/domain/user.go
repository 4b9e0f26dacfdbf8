package domain

// User is one persisted chat profile, keyed by ChatID.
// Timestamps are RFC3339 strings, matching the document format.
type User struct {
	ChatID               string `json:"chat_id"`
	UserID               string `json:"user_id,omitempty"`
	FirstName            string `json:"first_name,omitempty"`
	LastName             string `json:"last_name,omitempty"`
	Username             string `json:"username,omitempty"`
	Phone                string `json:"phone,omitempty"`
	RegisteredAt         string `json:"registered_at,omitempty"`
	Region               string `json:"region,omitempty"`
	LastRegionSelectedAt string `json:"last_region_selected_at,omitempty"`
}

// Registered reports whether the user has completed the contact share.
// A user is registered iff a non-empty phone is stored; no other field counts.
func (u User) Registered() bool {
	return u.Phone != ""
}

// Patch is a partial User for merge-by-identity upserts. ChatID selects the
// record; every non-nil field overwrites the corresponding User field, nil
// fields are left untouched. A pointer to "" still overwrites.
type Patch struct {
	ChatID               string
	UserID               *string
	FirstName            *string
	LastName             *string
	Username             *string
	Phone                *string
	RegisteredAt         *string
	Region               *string
	LastRegionSelectedAt *string
}

// Apply merges the patch into u, field by field.
func (p Patch) Apply(u *User) {
	u.ChatID = p.ChatID
	if p.UserID != nil {
		u.UserID = *p.UserID
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.RegisteredAt != nil {
		u.RegisteredAt = *p.RegisteredAt
	}
	if p.Region != nil {
		u.Region = *p.Region
	}
	if p.LastRegionSelectedAt != nil {
		u.LastRegionSelectedAt = *p.LastRegionSelectedAt
	}
}

// Str is a convenience for building patches.
func Str(s string) *string { return &s }
