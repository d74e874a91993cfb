package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixTally(t *testing.T) {
	tally := NewPrefixTally()

	assert.True(t, tally.Add("MR"))
	assert.True(t, tally.Add("MRS"))
	assert.False(t, tally.Add("MR"))
	assert.True(t, tally.Add(""))
	assert.False(t, tally.Add(""))
	assert.True(t, tally.Add("Mr"))

	assert.Equal(t, 4, tally.Len())
	assert.Equal(t, []string{"MR", "MRS", "", "Mr"}, tally.Prefixes())
}

func TestPrefixTally_PrefixesIsACopy(t *testing.T) {
	tally := NewPrefixTally()
	tally.Add("DR")

	got := tally.Prefixes()
	got[0] = "changed"

	assert.Equal(t, []string{"DR"}, tally.Prefixes())
}

func TestPrefixTally_Empty(t *testing.T) {
	tally := NewPrefixTally()
	assert.Zero(t, tally.Len())
	assert.Empty(t, tally.Prefixes())
}
