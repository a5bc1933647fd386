package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// BlockType is the discriminator for a lesson content block.
type BlockType string

const (
	BlockText      BlockType = "TEXT"
	BlockImage     BlockType = "IMAGE"
	BlockAudio     BlockType = "AUDIO"
	BlockVideoLink BlockType = "VIDEO_LINK"
	BlockPDFLink   BlockType = "PDF_LINK"
	BlockNote      BlockType = "NOTE"
	BlockQuote     BlockType = "QUOTE"
	BlockDivider   BlockType = "DIVIDER"
	BlockList      BlockType = "LIST"
	BlockCallout   BlockType = "CALLOUT"
)

// AllBlockTypes lists every supported block type.
var AllBlockTypes = []BlockType{
	BlockText, BlockImage, BlockAudio, BlockVideoLink, BlockPDFLink,
	BlockNote, BlockQuote, BlockDivider, BlockList, BlockCallout,
}

// IsValidBlockType reports whether t is one of the supported block types.
func IsValidBlockType(t BlockType) bool {
	for _, known := range AllBlockTypes {
		if t == known {
			return true
		}
	}
	return false
}

const (
	CalloutInfo    = "info"
	CalloutWarning = "warning"
	CalloutSuccess = "success"
	CalloutTip     = "tip"
)

const (
	ListBullet = "bullet"
	ListNumber = "number"
)

type BlockStyle struct {
	Color    string `json:"color,omitempty"`
	Align    string `json:"align,omitempty"`    // left, center, right
	ListType string `json:"listType,omitempty"` // bullet or number
}

type BlockMetadata struct {
	Caption string      `json:"caption,omitempty"`
	Style   *BlockStyle `json:"style,omitempty"`
	Variant string      `json:"variant,omitempty"` // callouts: info, warning, success, tip
	Items   []string    `json:"items,omitempty"`
}

// Block is one typed content unit inside a lesson. Content is overloaded by
// type: plain text for TEXT/QUOTE/NOTE, newline-delimited items for LIST and
// a URL for IMAGE/AUDIO/VIDEO_LINK/PDF_LINK. DIVIDER carries no content.
type Block struct {
	ID       string         `json:"id"`
	Type     BlockType      `json:"type"`
	Content  string         `json:"content"`
	Metadata *BlockMetadata `json:"metadata,omitempty"`
}

// NewBlock creates a block of the given type with a fresh id and the
// creation defaults (empty content, left alignment).
func NewBlock(t BlockType) Block {
	return Block{
		ID:      uuid.NewString(),
		Type:    t,
		Content: "",
		Metadata: &BlockMetadata{
			Style: &BlockStyle{Align: "left"},
		},
	}
}

// Clone returns a deep copy of the block under a freshly generated id.
func (b Block) Clone() Block {
	dup := b
	dup.ID = uuid.NewString()
	if b.Metadata != nil {
		meta := *b.Metadata
		if b.Metadata.Style != nil {
			style := *b.Metadata.Style
			meta.Style = &style
		}
		if b.Metadata.Items != nil {
			meta.Items = append([]string(nil), b.Metadata.Items...)
		}
		dup.Metadata = &meta
	}
	return dup
}

// BlockSequence is the ordered block sequence of a lesson, stored as a JSON
// column. Position in the slice is the only ordering signal.
type BlockSequence []Block

func (bs BlockSequence) Value() (driver.Value, error) {
	if bs == nil {
		bs = BlockSequence{}
	}
	data, err := json.Marshal(bs)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (bs *BlockSequence) Scan(value interface{}) error {
	if value == nil {
		*bs = BlockSequence{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported block sequence column type %T", value)
	}
	if len(data) == 0 {
		*bs = BlockSequence{}
		return nil
	}
	return json.Unmarshal(data, bs)
}

// IndexOf returns the position of the block with the given id, or -1.
func (bs BlockSequence) IndexOf(id string) int {
	for i, b := range bs {
		if b.ID == id {
			return i
		}
	}
	return -1
}

var ErrBlockNotFound = errors.New("block not found")
