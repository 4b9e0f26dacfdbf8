package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegions_FixedSet(t *testing.T) {
	assert.Len(t, Regions, 13)
	for _, r := range Regions {
		// ':' delimits callback-data fields, region names must stay clear of it.
		assert.NotContains(t, r, ":")
	}
}

func TestValidRegion(t *testing.T) {
	assert.True(t, ValidRegion("Toshkent"))
	assert.True(t, ValidRegion("Qoraqalpog‘iston"))
	assert.False(t, ValidRegion("toshkent"))
	assert.False(t, ValidRegion("Xorazm viloyati"))
	assert.False(t, ValidRegion(""))
}
