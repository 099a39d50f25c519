package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinNotesNoTitles(t *testing.T) {
	assert.Equal(t, "just notes", JoinNotes("just notes", nil))
}

func TestJoinSplitRoundTrip(t *testing.T) {
	notes := JoinNotes("remember the retreat", []string{"For the family", "For the city"})

	general, titles := SplitNotes(notes)
	assert.Equal(t, "remember the retreat", general)
	assert.Equal(t, []string{"For the family", "For the city"}, titles)
}

func TestSplitNotesWithoutMarker(t *testing.T) {
	general, titles := SplitNotes("plain free-form text")
	assert.Equal(t, "plain free-form text", general)
	assert.Nil(t, titles)
}

func TestSplitNotesSkipsBlankLines(t *testing.T) {
	general, titles := SplitNotes("head\n\nIntercessions:\n- one\n\n- two\n")
	assert.Equal(t, "head", general)
	assert.Equal(t, []string{"one", "two"}, titles)
}

func TestJoinNotesEmptyGeneralText(t *testing.T) {
	notes := JoinNotes("", []string{"For healing"})
	general, titles := SplitNotes(notes)
	assert.Equal(t, "", general)
	assert.Equal(t, []string{"For healing"}, titles)
}
