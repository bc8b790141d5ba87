package agent

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/proverbs-one/npslocator/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	a, err := New("nps-001", "Capitol Notary Services", 38.9, -77.03)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID() != "nps-001" {
		t.Errorf("ID() = %q", a.ID())
	}
	if a.Name() != "Capitol Notary Services" {
		t.Errorf("Name() = %q", a.Name())
	}
	if a.Coordinate().Lat() != 38.9 || a.Coordinate().Lng() != -77.03 {
		t.Errorf("Coordinate() = %v", a.Coordinate())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		agentName string
		lat, lng  float64
		field     string
	}{
		{"empty id", "", "A", 0, 0, "id"},
		{"long id", strings.Repeat("a", MaxIDLength+1), "A", 0, 0, "id"},
		{"bad id chars", "nps 001", "A", 0, 0, "id"},
		{"blank name", "a", "   ", 0, 0, "name"},
		{"long name", "a", strings.Repeat("n", MaxNameLength+1), 0, 0, "name"},
		{"latitude out of range", "a", "A", 200, 0, "coordinate"},
		{"longitude out of range", "a", "A", 0, -180.5, "coordinate"},
		{"nan latitude", "a", "A", math.NaN(), 0, "coordinate"},
		{"inf longitude", "a", "A", 0, math.Inf(1), "coordinate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.agentName, tt.lat, tt.lng)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestNew_BoundaryCoordinates(t *testing.T) {
	for _, c := range [][2]float64{{90, 180}, {-90, -180}, {0, 0}} {
		if _, err := New("edge", "Edge", c[0], c[1]); err != nil {
			t.Errorf("(%f, %f): unexpected error %v", c[0], c[1], err)
		}
	}
}
