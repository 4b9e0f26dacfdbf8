package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountByRegion(t *testing.T) {
	users := []User{
		{ChatID: "1", Region: "Toshkent"},
		{ChatID: "2", Region: "Toshkent"},
		{ChatID: "3"},
	}

	got := CountByRegion(users)

	assert.Equal(t, []RegionCount{
		{Region: "Toshkent", Count: 2},
		{Region: UnselectedLabel, Count: 1},
	}, got)
}

func TestCountByRegion_TiesKeepFirstOccurrenceOrder(t *testing.T) {
	users := []User{
		{ChatID: "1", Region: "Andijon"},
		{ChatID: "2", Region: "Buxoro"},
		{ChatID: "3", Region: "Buxoro"},
		{ChatID: "4", Region: "Xorazm"},
	}

	got := CountByRegion(users)

	assert.Equal(t, []RegionCount{
		{Region: "Buxoro", Count: 2},
		{Region: "Andijon", Count: 1},
		{Region: "Xorazm", Count: 1},
	}, got)
}

func TestCountByRegion_Empty(t *testing.T) {
	assert.Empty(t, CountByRegion(nil))
}
