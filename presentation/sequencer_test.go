package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/render"
)

func threeBlocks() []models.Block {
	return []models.Block{
		models.NewBlock(models.BlockText),
		models.NewBlock(models.BlockQuote),
		models.NewBlock(models.BlockDivider),
	}
}

func TestSequencerStartsAtFirstBlock(t *testing.T) {
	seq := NewSequencer(threeBlocks())

	assert.Equal(t, 0, seq.Index())
	assert.Equal(t, 3, seq.Len())

	current, ok := seq.Current()
	require.True(t, ok)
	assert.Equal(t, models.BlockText, current.Type)
}

func TestAdvanceMovesOneBlock(t *testing.T) {
	seq := NewSequencer(threeBlocks())

	assert.True(t, seq.Advance())
	assert.Equal(t, 1, seq.Index())
}

func TestAdvanceBoundedAtLastBlock(t *testing.T) {
	seq := NewSequencer(threeBlocks())

	seq.Advance()
	seq.Advance()
	assert.Equal(t, 2, seq.Index())

	// Already at the end, cursor stays put
	assert.False(t, seq.Advance())
	assert.Equal(t, 2, seq.Index())
}

func TestRetreatBoundedAtFirstBlock(t *testing.T) {
	seq := NewSequencer(threeBlocks())

	assert.False(t, seq.Retreat())
	assert.Equal(t, 0, seq.Index())

	seq.Advance()
	assert.True(t, seq.Retreat())
	assert.Equal(t, 0, seq.Index())
}

func TestProgress(t *testing.T) {
	seq := NewSequencer(threeBlocks())

	assert.InDelta(t, 1.0/3.0, seq.Progress(), 1e-9)
	seq.Advance()
	seq.Advance()
	assert.InDelta(t, 1.0, seq.Progress(), 1e-9)
}

func TestEmptySequence(t *testing.T) {
	seq := NewSequencer(nil)

	_, ok := seq.Current()
	assert.False(t, ok)
	assert.False(t, seq.Advance())
	assert.False(t, seq.Retreat())
	assert.Zero(t, seq.Progress())
}

func TestSettingsLockedForPresentation(t *testing.T) {
	seq := NewSequencer(threeBlocks())

	assert.Equal(t, render.PresentationSettings(), seq.Settings())
	assert.Equal(t, render.ThemeDark, seq.Settings().Theme)
	assert.Equal(t, render.FontHuge, seq.Settings().FontSize)
}
