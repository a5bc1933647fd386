package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sem485/eduforge-lms/models"
)

func sampleSequence() []models.Block {
	return []models.Block{
		models.NewBlock(models.BlockText),
		models.NewBlock(models.BlockList),
		models.NewBlock(models.BlockQuote),
	}
}

func idsOf(seq []models.Block) []string {
	ids := make([]string, len(seq))
	for i, b := range seq {
		ids[i] = b.ID
	}
	return ids
}

func TestInsertAppendsByDefault(t *testing.T) {
	seq := sampleSequence()

	out, block, err := Insert(seq, models.BlockDivider, -1)
	require.NoError(t, err)

	assert.Len(t, out, 4)
	assert.Equal(t, block.ID, out[3].ID)
	assert.Equal(t, models.BlockDivider, out[3].Type)
	// Original slice untouched
	assert.Len(t, seq, 3)
}

func TestInsertAfterIndex(t *testing.T) {
	seq := sampleSequence()

	out, block, err := Insert(seq, models.BlockCallout, 0)
	require.NoError(t, err)

	require.Len(t, out, 4)
	assert.Equal(t, seq[0].ID, out[0].ID)
	assert.Equal(t, block.ID, out[1].ID)
	assert.Equal(t, seq[1].ID, out[2].ID)
}

func TestInsertDefaults(t *testing.T) {
	out, block, err := Insert(nil, models.BlockText, -1)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.NotEmpty(t, block.ID)
	assert.Equal(t, "", block.Content)
	require.NotNil(t, block.Metadata)
	require.NotNil(t, block.Metadata.Style)
	assert.Equal(t, "left", block.Metadata.Style.Align)
}

func TestInsertRejectsUnknownType(t *testing.T) {
	seq := sampleSequence()

	out, _, err := Insert(seq, models.BlockType("TABLE"), -1)
	assert.Error(t, err)
	assert.Equal(t, idsOf(seq), idsOf(out))
}

func TestUpdateContent(t *testing.T) {
	seq := sampleSequence()

	out, err := UpdateContent(seq, seq[1].ID, "apples\noranges")
	require.NoError(t, err)

	assert.Equal(t, "apples\noranges", out[1].Content)
	assert.Equal(t, "", seq[1].Content)
}

func TestUpdateContentUnknownID(t *testing.T) {
	seq := sampleSequence()

	_, err := UpdateContent(seq, "missing", "x")
	assert.ErrorIs(t, err, models.ErrBlockNotFound)
}

func TestUpdateMetadataMergesStyleFieldwise(t *testing.T) {
	seq := sampleSequence()
	color := "#ff0000"

	out, err := UpdateMetadata(seq, seq[0].ID, MetadataPatch{
		Style: &StylePatch{Color: &color},
	})
	require.NoError(t, err)

	style := out[0].Metadata.Style
	require.NotNil(t, style)
	assert.Equal(t, "#ff0000", style.Color)
	// Untouched style fields survive the merge
	assert.Equal(t, "left", style.Align)
}

func TestUpdateMetadataShallowFields(t *testing.T) {
	seq := sampleSequence()
	caption := "Figure 1"
	variant := models.CalloutWarning

	out, err := UpdateMetadata(seq, seq[2].ID, MetadataPatch{
		Caption: &caption,
		Variant: &variant,
	})
	require.NoError(t, err)

	assert.Equal(t, "Figure 1", out[2].Metadata.Caption)
	assert.Equal(t, models.CalloutWarning, out[2].Metadata.Variant)
	// Source block metadata untouched
	assert.Equal(t, "", seq[2].Metadata.Caption)
}

func TestRemoveThenSequenceShrinks(t *testing.T) {
	seq := sampleSequence()

	out, err := Remove(seq, seq[1].ID)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, []string{seq[0].ID, seq[2].ID}, idsOf(out))
}

func TestRemoveUnknownID(t *testing.T) {
	seq := sampleSequence()

	out, err := Remove(seq, "missing")
	assert.ErrorIs(t, err, models.ErrBlockNotFound)
	assert.Equal(t, idsOf(seq), idsOf(out))
}

func TestDuplicateLandsAfterSource(t *testing.T) {
	seq := sampleSequence()
	seq[0].Content = "hello"

	out, dup, err := Duplicate(seq, seq[0].ID)
	require.NoError(t, err)

	require.Len(t, out, 4)
	assert.Equal(t, dup.ID, out[1].ID)
	assert.NotEqual(t, seq[0].ID, dup.ID)
	assert.Equal(t, "hello", dup.Content)
}

func TestDuplicateDeepCopiesMetadata(t *testing.T) {
	seq := sampleSequence()
	seq[1].Metadata.Items = []string{"a", "b"}

	out, dup, err := Duplicate(seq, seq[1].ID)
	require.NoError(t, err)

	out[2].Metadata.Items[0] = "changed"
	assert.Equal(t, "a", seq[1].Metadata.Items[0])
	assert.Equal(t, dup.ID, out[2].ID)
}

func TestReorder(t *testing.T) {
	seq := sampleSequence()

	out, err := Reorder(seq, 0, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{seq[1].ID, seq[2].ID, seq[0].ID}, idsOf(out))
}

func TestReorderBackwards(t *testing.T) {
	seq := sampleSequence()

	out, err := Reorder(seq, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{seq[2].ID, seq[0].ID, seq[1].ID}, idsOf(out))
}

func TestReorderSameIndexIsNoop(t *testing.T) {
	seq := sampleSequence()

	out, err := Reorder(seq, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, idsOf(seq), idsOf(out))
}

func TestReorderOutOfRange(t *testing.T) {
	seq := sampleSequence()

	_, err := Reorder(seq, 5, 0)
	assert.Error(t, err)

	_, err = Reorder(seq, 0, -1)
	assert.Error(t, err)
}
