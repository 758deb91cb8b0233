package wordpress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// WidgetList represents the response from the widget list endpoint.
// The map values are opaque metadata blobs; only the widget identifiers
// (the map keys) are used before the per-widget detail fetch.
type WidgetList struct {
	Widgets map[string]json.RawMessage `json:"widgets"`
}

// WidgetDetail represents the response from the per-widget detail endpoint.
// It contains the display title, editor search keywords, the full control
// schema, and the widget's category list (first entry is the primary one).
type WidgetDetail struct {
	Title      string     `json:"title"`
	Keywords   []string   `json:"keywords"`
	Controls   ControlMap `json:"controls"`
	Categories []string   `json:"categories"`
}

// Control describes a single configurable widget property. Default and
// Options stay raw because their shape varies per control type: defaults can
// be strings, numbers, or objects (sliders carry {"size": ..., "unit": ...}),
// and options can be either a key-to-label object or a plain list.
type Control struct {
	Type    string          `json:"type"`
	Label   string          `json:"label"`
	Tab     string          `json:"tab"`
	Section string          `json:"section"`
	Default json.RawMessage `json:"default"`
	Options json.RawMessage `json:"options"`
}

// HasListOptions reports whether the control's options decode as a JSON
// array rather than an object.
func (c Control) HasListOptions() bool {
	return firstByte(c.Options) == '['
}

// OptionKeys returns the option keys in document order. Absent or null
// options count as an empty object; ok is false when options is present but
// not a JSON object. Key order matters because select/choose controls render
// their options in schema order.
func (c Control) OptionKeys() (keys []string, ok bool) {
	switch firstByte(c.Options) {
	case 0, 'n':
		return nil, true
	case '{':
	default:
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(c.Options))
	if _, err := dec.Token(); err != nil {
		return nil, false
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, false
		}
		keys = append(keys, key)
	}
	return keys, true
}

// DefaultString returns the control's default when it is a JSON string.
func (c Control) DefaultString() (string, bool) {
	if firstByte(c.Default) != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(c.Default, &s); err != nil {
		return "", false
	}
	return s, true
}

// SliderDefault returns the size and unit from an object-shaped default.
// ok is false when the default is not an object or its size is empty/zero.
func (c Control) SliderDefault() (size, unit string, ok bool) {
	if firstByte(c.Default) != '{' {
		return "", "", false
	}
	var d struct {
		Size any    `json:"size"`
		Unit string `json:"unit"`
	}
	if err := json.Unmarshal(c.Default, &d); err != nil {
		return "", "", false
	}
	switch v := d.Size.(type) {
	case string:
		if v == "" {
			return "", "", false
		}
		size = v
	case float64:
		if v == 0 {
			return "", "", false
		}
		size = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return "", "", false
	}
	return size, d.Unit, true
}

// ControlMap holds a widget's control schema keyed by control name while
// preserving the JSON document order of the keys. Elementor's panel layout
// follows registration order, and the report's grouping relies on it, so a
// plain Go map would scramble the output.
type ControlMap struct {
	keys  []string
	byKey map[string]Control
}

// UnmarshalJSON decodes the controls object one key at a time so that
// document order survives. A JSON null decodes to an empty map.
func (m *ControlMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("controls: expected object, got %v", tok)
	}

	m.keys = nil
	m.byKey = make(map[string]Control)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var ctrl Control
		if err := dec.Decode(&ctrl); err != nil {
			return fmt.Errorf("control %q: %w", key, err)
		}
		m.keys = append(m.keys, key)
		m.byKey[key] = ctrl
	}
	_, err = dec.Token() // closing brace
	return err
}

// Keys returns the control keys in document order.
func (m ControlMap) Keys() []string { return m.keys }

// Get returns the control for key.
func (m ControlMap) Get(key string) (Control, bool) {
	ctrl, ok := m.byKey[key]
	return ctrl, ok
}

// Len returns the number of controls.
func (m ControlMap) Len() int { return len(m.keys) }

// firstByte returns the first non-whitespace byte of raw, or 0 when empty.
func firstByte(raw json.RawMessage) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
