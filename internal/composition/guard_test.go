package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

func TestIsAvailable(t *testing.T) {
	open := []model.Order{
		{ID: "o-1", VehicleID: "123"},
		{ID: "o-2", VehicleID: "T-2"},
	}

	tests := []struct {
		name      string
		vehicleID string
		want      bool
	}{
		{"held by open order", "123", false},
		{"held by second order", "T-2", false},
		{"surrounding whitespace is ignored", "  T-2 ", false},
		{"not on any order", "T-1", true},
		{"prefix of a held id", "12", true},
		{"case sensitive", "t-2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailable(tt.vehicleID, open))
		})
	}
}

func TestIsAvailable_NoOpenOrders(t *testing.T) {
	assert.True(t, IsAvailable("123", nil))
}

func TestHolderOf(t *testing.T) {
	open := []model.Order{{ID: "o-1", VehicleID: "T-2"}}

	o, ok := HolderOf("T-2", open)
	assert.True(t, ok)
	assert.Equal(t, "o-1", o.ID)

	_, ok = HolderOf("T-1", open)
	assert.False(t, ok)
}
