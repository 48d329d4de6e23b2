package domain

import "time"

// NotificationType is a named category of notification the platform can
// send, with localized descriptions keyed by language code. Records are
// maintained out of band (see cmd/seed); this API only reads them.
type NotificationType struct {
	ID               int64             `json:"id" dynamodbav:"id"`
	Key              string            `json:"key" dynamodbav:"key"`
	Descriptions     map[string]string `json:"descriptions" dynamodbav:"descriptions"`
	Available        bool              `json:"available" dynamodbav:"available"`
	Deprecated       bool              `json:"deprecated" dynamodbav:"deprecated"`
	DeprecatedReason *string           `json:"deprecated_reason" dynamodbav:"deprecated_reason"`
	CreatedAt        *time.Time        `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        *time.Time        `json:"updated_at" dynamodbav:"updated_at"`
}

// Description returns the description for lang, falling back to English
// and finally to the empty string. Never panics, even on a nil map.
func (n NotificationType) Description(lang string) string {
	if d := n.Descriptions[lang]; d != "" {
		return d
	}
	return n.Descriptions["en"]
}
