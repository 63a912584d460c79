package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Angle is the persuasion strategy a variant was written with
type Angle string

const (
	AnglePainPoint   Angle = "pain_point"
	AngleBenefit     Angle = "benefit"
	AngleSocialProof Angle = "social_proof"
)

// Variant is one generated ad-copy candidate.
// CharacterCount is reported by the remote service and is not recomputed.
type Variant struct {
	Angle          Angle  `json:"angle"`
	Hook           string `json:"hook"`
	Body           string `json:"body"`
	CTA            string `json:"cta"`
	CharacterCount int    `json:"character_count"`
}

// NamedVariant pairs a variant with its key in the generation result
type NamedVariant struct {
	Key     string
	Variant Variant
}

// Variants is a generation result. It decodes from a JSON object and keeps the
// object's key order, which is the display order.
type Variants []NamedVariant

// Keys returns the variant keys in display order
func (v Variants) Keys() []string {
	keys := make([]string, len(v))
	for i, nv := range v {
		keys[i] = nv.Key
	}
	return keys
}

// UnmarshalJSON decodes a JSON object into an ordered list of variants.
// A repeated key keeps its first position and takes the last value.
func (v *Variants) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("variants: expected JSON object, got %v", tok)
	}

	out := make(Variants, 0)
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("variants: expected object key, got %v", tok)
		}

		var variant Variant
		if err := dec.Decode(&variant); err != nil {
			return fmt.Errorf("variants: decode %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			out[i].Variant = variant
			continue
		}
		index[key] = len(out)
		out = append(out, NamedVariant{Key: key, Variant: variant})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*v = out
	return nil
}

// MarshalJSON encodes the variants as a JSON object in display order
func (v Variants) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, nv := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(nv.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(nv.Variant)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
