package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SocialLink is a single outbound link shown on the storefront.
type SocialLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SocialLinkList is the ordered set of links persisted as JSONB.
type SocialLinkList []SocialLink

// Value marshals the list into JSON for Postgres.
func (l SocialLinkList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	buf, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Scan decodes JSONB into the list.
func (l *SocialLinkList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("social links: unsupported scan type %T", value)
	}

	result := SocialLinkList{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*l = result
	return nil
}
