package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Contact holds the storefront contact card persisted as JSONB.
type Contact struct {
	Phone             string `json:"phone,omitempty"`
	WhatsappNumber    string `json:"whatsappNumber,omitempty"`
	Email             string `json:"email,omitempty"`
	GetInTouchContent string `json:"getInTouchContent,omitempty"`
	ResponseTime      string `json:"responseTime,omitempty"`
	Available247      bool   `json:"available24_7,omitempty"`
}

// BusinessDay is one weekday entry of the opening schedule.
type BusinessDay struct {
	Day    string `json:"day"`
	IsOpen bool   `json:"isOpen"`
	Hours  string `json:"hours,omitempty"`
}

// BusinessHours is the per-weekday opening schedule persisted as JSONB.
type BusinessHours []BusinessDay

// QuickHelp toggles the storefront support entry points.
type QuickHelp struct {
	LiveChatSupport  bool `json:"liveChatSupport"`
	TechnicalSupport bool `json:"technicalSupport"`
	AccountHelp      bool `json:"accountHelp"`
}

// AboutUs is the long-form storefront narrative block persisted as JSONB.
type AboutUs struct {
	OurStory    string            `json:"ourStory,omitempty"`
	OurMission  string            `json:"ourMission,omitempty"`
	OurVision   string            `json:"ourVision,omitempty"`
	OurValues   map[string]string `json:"ourValues,omitempty"`
	WhyChooseUs map[string]string `json:"whyChooseUs,omitempty"`
	Stats       map[string]string `json:"stats,omitempty"`
	OurTeam     string            `json:"ourTeam,omitempty"`
}

func (c Contact) Value() (driver.Value, error) {
	return jsonValue(c)
}

func (c *Contact) Scan(value interface{}) error {
	return jsonScan("contact", value, c)
}

func (b BusinessHours) Value() (driver.Value, error) {
	if b == nil {
		return "[]", nil
	}
	return jsonValue(b)
}

func (b *BusinessHours) Scan(value interface{}) error {
	return jsonScan("business hours", value, b)
}

func (q QuickHelp) Value() (driver.Value, error) {
	return jsonValue(q)
}

func (q *QuickHelp) Scan(value interface{}) error {
	return jsonScan("quick help", value, q)
}

func (a AboutUs) Value() (driver.Value, error) {
	return jsonValue(a)
}

func (a *AboutUs) Scan(value interface{}) error {
	return jsonScan("about us", value, a)
}

func jsonValue(v any) (driver.Value, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func jsonScan(label string, value interface{}, dest any) error {
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("%s: unsupported scan type %T", label, value)
	}

	return json.Unmarshal(raw, dest)
}
