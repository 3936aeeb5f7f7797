package payload

import (
	"encoding/json"
	"fmt"
	"time"
)

/* Payload is the JSON body delivered to client webhooks
 * The shape is a compatibility contract with external client systems: form
 * fields at the top level merged with utm, timestamp, funnel, variant and
 * lead_id, preserved byte-for-byte in field naming
 */
type Payload struct {
	// Fields is the lead's form data, spread at the top level
	Fields map[string]any

	UTM       map[string]any
	Timestamp time.Time
	Funnel    string
	Variant   string
	LeadID    string
}

// Reserved keys always win over a form field of the same name
const (
	keyUTM       = "utm"
	keyTimestamp = "timestamp"
	keyFunnel    = "funnel"
	keyVariant   = "variant"
	keyLeadID    = "lead_id"
)

// MarshalJSON returns the JSON encoding of the payload
func (p Payload) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(p.Fields)+5)
	for key, value := range p.Fields {
		body[key] = value
	}

	utm := p.UTM
	if utm == nil {
		utm = map[string]any{}
	}

	body[keyUTM] = utm
	body[keyTimestamp] = p.Timestamp.UTC().Format(time.RFC3339)
	body[keyFunnel] = p.Funnel
	body[keyVariant] = p.Variant
	body[keyLeadID] = p.LeadID

	return json.Marshal(body)
}

// Bytes returns the JSON-encoded payload as bytes
// The returned bytes are minified (no extra whitespace)
func (p Payload) Bytes() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}
	return data, nil
}
