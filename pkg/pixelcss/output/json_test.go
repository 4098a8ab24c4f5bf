package output

import (
	"testing"

	"github.com/ukaji3/pixelcss-go/pkg/pixelcss/models"
)

func TestShadowToJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     models.ShadowData
		pretty   bool
		expected string
	}{
		{
			name:     "string",
			data:     models.ShadowData{Format: models.FormatString, Text: "10px 10px 0 0 #fff"},
			expected: `"10px 10px 0 0 #fff"`,
		},
		{
			name: "array",
			data: models.ShadowData{Format: models.FormatArray, Entries: []models.ShadowEntry{
				{X: 10, Y: 10, Color: "#fff", BlurRadius: 2},
			}},
			expected: `[{"x":10,"y":10,"color":"#fff","blurRadius":"2px","spreadRadius":0}]`,
		},
		{
			name:     "empty array",
			data:     models.ShadowData{Format: models.FormatArray},
			expected: `[]`,
		},
		{
			name: "pretty",
			data: models.ShadowData{Format: models.FormatArray, Entries: []models.ShadowEntry{
				{X: 1, Y: 2, Color: "red"},
			}},
			pretty:   true,
			expected: "[\n  {\n    \"x\": 1,\n    \"y\": 2,\n    \"color\": \"red\",\n    \"blurRadius\": 0,\n    \"spreadRadius\": 0\n  }\n]",
		},
	}

	for _, tt := range tests {
		got, err := ShadowToJSON(tt.data, tt.pretty)
		if err != nil {
			t.Fatalf("%s: ShadowToJSON failed: %v", tt.name, err)
		}
		if string(got) != tt.expected {
			t.Errorf("%s: ShadowToJSON() = %s, expected %s", tt.name, got, tt.expected)
		}
	}
}

func TestKeyframesToJSON(t *testing.T) {
	km := models.NewKeyframeMap()
	km.Set("0%, 50%", models.Keyframe{BoxShadow: "a;height: 1px; width: 1px;"})
	km.Set("50.01%, 100%", models.Keyframe{BoxShadow: "b"})
	km.Set("0%, 50%", models.Keyframe{BoxShadow: "c"})

	got, err := KeyframesToJSON(km, false)
	if err != nil {
		t.Fatalf("KeyframesToJSON failed: %v", err)
	}
	expected := `{"0%, 50%":{"boxShadow":"c"},"50.01%, 100%":{"boxShadow":"b"}}`
	if string(got) != expected {
		t.Errorf("KeyframesToJSON() = %s, expected %s", got, expected)
	}

	empty, err := KeyframesToJSON(nil, false)
	if err != nil || string(empty) != "{}" {
		t.Errorf("KeyframesToJSON(nil) = %s, %v", empty, err)
	}
}
