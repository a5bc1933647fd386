// Package blocks implements the mutation surface of a lesson's block
// sequence. Every operation is copy-on-write over the slice so a failed save
// leaves the stored lesson untouched.
package blocks

import (
	"fmt"

	"github.com/Sem485/eduforge-lms/models"
)

// StylePatch is a partial update of a block style. Nil fields are left as-is.
type StylePatch struct {
	Color    *string `json:"color"`
	Align    *string `json:"align"`
	ListType *string `json:"listType"`
}

// MetadataPatch is a partial update of block metadata. The merge is shallow
// except for Style, which is merged field-wise rather than replaced.
type MetadataPatch struct {
	Caption *string     `json:"caption"`
	Variant *string     `json:"variant"`
	Items   *[]string   `json:"items"`
	Style   *StylePatch `json:"style"`
}

// Insert creates a block of the given type with type-appropriate defaults.
// With atIndex >= 0 the block lands directly after that position, otherwise
// it is appended. Returns the new sequence and the created block.
func Insert(seq []models.Block, t models.BlockType, atIndex int) ([]models.Block, models.Block, error) {
	if !models.IsValidBlockType(t) {
		return seq, models.Block{}, fmt.Errorf("unsupported block type %q", t)
	}
	block := models.NewBlock(t)
	if atIndex < 0 || atIndex >= len(seq) {
		out := make([]models.Block, 0, len(seq)+1)
		out = append(out, seq...)
		out = append(out, block)
		return out, block, nil
	}
	out := make([]models.Block, 0, len(seq)+1)
	out = append(out, seq[:atIndex+1]...)
	out = append(out, block)
	out = append(out, seq[atIndex+1:]...)
	return out, block, nil
}

// UpdateContent replaces the content of the block with the given id.
func UpdateContent(seq []models.Block, id, content string) ([]models.Block, error) {
	idx := models.BlockSequence(seq).IndexOf(id)
	if idx < 0 {
		return seq, models.ErrBlockNotFound
	}
	out := append([]models.Block(nil), seq...)
	out[idx].Content = content
	return out, nil
}

// UpdateMetadata merges the patch into the matching block's metadata.
func UpdateMetadata(seq []models.Block, id string, patch MetadataPatch) ([]models.Block, error) {
	idx := models.BlockSequence(seq).IndexOf(id)
	if idx < 0 {
		return seq, models.ErrBlockNotFound
	}
	out := append([]models.Block(nil), seq...)
	meta := models.BlockMetadata{}
	if out[idx].Metadata != nil {
		meta = *out[idx].Metadata
		if out[idx].Metadata.Style != nil {
			style := *out[idx].Metadata.Style
			meta.Style = &style
		}
	}
	if patch.Caption != nil {
		meta.Caption = *patch.Caption
	}
	if patch.Variant != nil {
		meta.Variant = *patch.Variant
	}
	if patch.Items != nil {
		meta.Items = append([]string(nil), (*patch.Items)...)
	}
	if patch.Style != nil {
		if meta.Style == nil {
			meta.Style = &models.BlockStyle{}
		}
		if patch.Style.Color != nil {
			meta.Style.Color = *patch.Style.Color
		}
		if patch.Style.Align != nil {
			meta.Style.Align = *patch.Style.Align
		}
		if patch.Style.ListType != nil {
			meta.Style.ListType = *patch.Style.ListType
		}
	}
	out[idx].Metadata = &meta
	return out, nil
}

// Remove deletes the block with the given id.
func Remove(seq []models.Block, id string) ([]models.Block, error) {
	idx := models.BlockSequence(seq).IndexOf(id)
	if idx < 0 {
		return seq, models.ErrBlockNotFound
	}
	out := make([]models.Block, 0, len(seq)-1)
	out = append(out, seq[:idx]...)
	out = append(out, seq[idx+1:]...)
	return out, nil
}

// Duplicate clones the block with the given id under a fresh id and inserts
// the copy directly after the source.
func Duplicate(seq []models.Block, id string) ([]models.Block, models.Block, error) {
	idx := models.BlockSequence(seq).IndexOf(id)
	if idx < 0 {
		return seq, models.Block{}, models.ErrBlockNotFound
	}
	dup := seq[idx].Clone()
	out := make([]models.Block, 0, len(seq)+1)
	out = append(out, seq[:idx+1]...)
	out = append(out, dup)
	out = append(out, seq[idx+1:]...)
	return out, dup, nil
}

// Reorder removes the block at fromIndex and re-inserts it at toIndex.
// Equal indexes are a no-op.
func Reorder(seq []models.Block, fromIndex, toIndex int) ([]models.Block, error) {
	if fromIndex < 0 || fromIndex >= len(seq) {
		return seq, fmt.Errorf("from index %d out of range", fromIndex)
	}
	if toIndex < 0 || toIndex >= len(seq) {
		return seq, fmt.Errorf("to index %d out of range", toIndex)
	}
	if fromIndex == toIndex {
		return seq, nil
	}
	out := append([]models.Block(nil), seq...)
	moved := out[fromIndex]
	out = append(out[:fromIndex], out[fromIndex+1:]...)
	rest := append([]models.Block(nil), out[toIndex:]...)
	out = append(out[:toIndex], moved)
	out = append(out, rest...)
	return out, nil
}
