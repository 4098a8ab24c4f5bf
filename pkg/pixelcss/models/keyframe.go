package models

import (
	"bytes"
	"encoding/json"
)

// Keyframe is the declaration block of one keyframe range.
type Keyframe struct {
	// BoxShadow is the box-shadow value followed by the pixel dimensions.
	BoxShadow string `json:"boxShadow"`
}

// KeyframeMap maps keyframe range labels ("0%, 25%") to keyframes,
// preserving insertion order.
type KeyframeMap struct {
	labels []string
	frames map[string]Keyframe
}

// NewKeyframeMap creates an empty KeyframeMap.
func NewKeyframeMap() *KeyframeMap {
	return &KeyframeMap{frames: make(map[string]Keyframe)}
}

// Set stores kf under label. Re-setting a label replaces its keyframe
// but keeps its original position.
func (m *KeyframeMap) Set(label string, kf Keyframe) {
	if m.frames == nil {
		m.frames = make(map[string]Keyframe)
	}
	if _, ok := m.frames[label]; !ok {
		m.labels = append(m.labels, label)
	}
	m.frames[label] = kf
}

// Get returns the keyframe stored under label.
func (m *KeyframeMap) Get(label string) (Keyframe, bool) {
	kf, ok := m.frames[label]
	return kf, ok
}

// Len returns the number of labels.
func (m *KeyframeMap) Len() int {
	return len(m.labels)
}

// Labels returns the labels in insertion order.
func (m *KeyframeMap) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Each calls fn for every label in insertion order.
func (m *KeyframeMap) Each(fn func(label string, kf Keyframe)) {
	for _, l := range m.labels {
		fn(l, m.frames[l])
	}
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *KeyframeMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range m.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(l)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.frames[l])
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
