package models

import "encoding/json"

// Configuration is the full-config projection of an accumulated session:
// the service name, the bookkeeping list of enabled sections, and every
// section's content flattened to the top level when serialized.
type Configuration struct {
	ServiceName     string
	EnabledSections []string
	Sections        map[string]any
}

// MarshalJSON flattens section contents next to serviceName and
// enabledSections, matching the wire shape consumed by callers.
func (c Configuration) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Sections)+2)

	for name, value := range c.Sections {
		out[name] = value
	}

	out["serviceName"] = c.ServiceName

	enabled := c.EnabledSections
	if enabled == nil {
		enabled = []string{}
	}

	out["enabledSections"] = enabled

	return json.Marshal(out)
}
