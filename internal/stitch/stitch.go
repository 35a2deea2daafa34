// Package stitch links the tokens of two structurally adjacent lines,
// honoring the manipulator tokens of the earlier line to decide fan-out and
// fan-in.
package stitch

import (
	humerrors "github.com/jacoelho/humdrum/errors"
	"github.com/jacoelho/humdrum/internal/line"
	"github.com/jacoelho/humdrum/internal/token"
)

// Lines creates the forward/backward links between the tokens of two
// consecutive structural lines. Tokens gain links; none are created or
// destroyed. Both token cursors must land exactly on the ends of their lines
// or an alignment error naming both lines is returned.
func Lines(arena *token.Arena, prev, next *line.Line) error {
	// Common case: no interpretations involved, spine assignments are
	// one-to-one.
	if !prev.IsInterpretation() && !next.IsInterpretation() {
		if prev.TokenCount() != next.TokenCount() {
			return humerrors.NewStructuralf(humerrors.ErrFieldCount, next.Number(), -1,
				"lines %d and %d are not the same length: %q and %q",
				prev.Number(), next.Number(), prev.Text(), next.Text())
		}
		for i := 0; i < prev.TokenCount(); i++ {
			arena.Link(prev.Token(i), next.Token(i))
		}
		return nil
	}

	i, ii := 0, 0
	aligned := true
walk:
	for ; i < prev.TokenCount(); i++ {
		h := prev.Token(i)
		switch arena.At(h).Kind() {
		case token.Split:
			// one column becomes the next two
			for k := 0; k < 2; k++ {
				if ii >= next.TokenCount() {
					aligned = false
					break walk
				}
				arena.Link(h, next.Token(ii))
				ii++
			}
		case token.Merge:
			// every merge token of the run converges on one next token
			if ii >= next.TokenCount() {
				aligned = false
				break walk
			}
			for i < prev.TokenCount() && arena.At(prev.Token(i)).Kind() == token.Merge {
				arena.Link(prev.Token(i), next.Token(ii))
				i++
			}
			i--
			ii++
		case token.Exchange:
			if i+1 >= prev.TokenCount() || arena.At(prev.Token(i+1)).Kind() != token.Exchange {
				return humerrors.NewStructuralf(humerrors.ErrExchange, prev.Number(), i,
					"exchange manipulator without adjacent partner: %s", prev.Text())
			}
			if ii+1 >= next.TokenCount() {
				aligned = false
				break walk
			}
			arena.Link(prev.Token(i+1), next.Token(ii))
			arena.Link(prev.Token(i), next.Token(ii+1))
			ii += 2
			i++
		case token.Terminate:
			// terminated column consumes nothing on the next line
		case token.Add:
			if ii+1 >= next.TokenCount() || arena.At(next.Token(ii+1)).Kind() != token.Exclusive {
				return humerrors.NewStructuralf(humerrors.ErrAddExclusive, next.Number(), ii+1,
					"expected exclusive interpretation after add manipulator on line %d: %s",
					prev.Number(), next.Text())
			}
			arena.Link(h, next.Token(ii))
			ii += 2
		default:
			// data, null, comments, exclusive and generic interpretations
			// continue one-to-one
			if ii >= next.TokenCount() {
				aligned = false
				break walk
			}
			arena.Link(h, next.Token(ii))
			ii++
		}
	}

	if !aligned || i != prev.TokenCount() || ii != next.TokenCount() {
		return humerrors.NewStructuralf(humerrors.ErrAlignment, next.Number(), -1,
			"cannot stitch lines %d and %d together: %q (cursor %d of %d) and %q (cursor %d of %d)",
			prev.Number(), next.Number(),
			prev.Text(), i, prev.TokenCount(),
			next.Text(), ii, next.TokenCount())
	}
	return nil
}
