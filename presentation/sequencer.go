// Package presentation drives the one-block-at-a-time display of a lesson.
package presentation

import (
	"github.com/Sem485/eduforge-lms/models"
	"github.com/Sem485/eduforge-lms/render"
)

// Sequencer is a bounded cursor over a lesson's block sequence. Advance and
// Retreat map to the forward/backward keyboard commands; exiting the mode is
// the caller's concern, not a cursor transition.
type Sequencer struct {
	blocks []models.Block
	index  int
}

func NewSequencer(seq []models.Block) *Sequencer {
	return &Sequencer{blocks: seq}
}

// Settings returns the locked presentation display settings.
func (s *Sequencer) Settings() render.Settings {
	return render.PresentationSettings()
}

// Advance moves to the next block, bounded at the last index.
// It reports whether the cursor moved.
func (s *Sequencer) Advance() bool {
	if s.index >= len(s.blocks)-1 {
		return false
	}
	s.index++
	return true
}

// Retreat moves to the previous block, bounded at 0.
func (s *Sequencer) Retreat() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

func (s *Sequencer) Index() int { return s.index }

func (s *Sequencer) Len() int { return len(s.blocks) }

// Current returns the block under the cursor; ok is false for an empty
// sequence.
func (s *Sequencer) Current() (models.Block, bool) {
	if len(s.blocks) == 0 {
		return models.Block{}, false
	}
	return s.blocks[s.index], true
}

// Progress is (index+1)/length, 0 for an empty sequence.
func (s *Sequencer) Progress() float64 {
	if len(s.blocks) == 0 {
		return 0
	}
	return float64(s.index+1) / float64(len(s.blocks))
}
