// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package wordpress

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// object is a loosely-typed JSON object. WordPress and ACF are inconsistent
// about field types (an empty ACF group arrives as [] or false, unset text
// fields as false or null), so every read goes through a shape check and
// falls back to the zero value instead of failing.
type object map[string]json.RawMessage

// parseObject decodes raw as a JSON object. ok is false for any other shape.
func parseObject(raw json.RawMessage) (object, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, false
	}
	return o, true
}

// str returns a string field. Numbers are returned in their literal form;
// every other shape yields "".
func (o object) str(key string) string {
	raw := bytes.TrimSpace(o[key])
	if len(raw) == 0 {
		return ""
	}
	switch {
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9'):
		return string(raw)
	}
	return ""
}

// num returns an integer field, accepting JSON numbers and numeric strings.
func (o object) num(key string) int {
	s := strings.TrimSpace(o.str(key))
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// flag returns a boolean field; anything but a JSON true is false.
func (o object) flag(key string) bool {
	return string(bytes.TrimSpace(o[key])) == "true"
}

// obj returns a nested object, or an empty object for any other shape.
func (o object) obj(key string) object {
	nested, ok := parseObject(o[key])
	if !ok {
		return object{}
	}
	return nested
}

// arr returns a nested array's elements, or nil for any other shape.
func (o object) arr(key string) []json.RawMessage {
	return parseArray(o[key])
}

// rendered returns the "rendered" member of a {rendered: ...} wrapper,
// tolerating a bare string in its place.
func (o object) rendered(key string) string {
	if s := o.str(key); s != "" {
		return s
	}
	return o.obj(key).str("rendered")
}

// keysWithSuffix returns the keys ending in suffix, sorted for determinism.
func (o object) keysWithSuffix(suffix string) []string {
	var keys []string
	for k := range o {
		if strings.HasSuffix(k, suffix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// parseArray decodes raw as a JSON array. Non-arrays yield nil.
func parseArray(raw json.RawMessage) []json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}
