package handlers

import (
	"github.com/example/essence/internal/models"
)

// notePair is one (note, position) association supplied by a client.
type notePair struct {
	NoteID   int64               `json:"note_id"`
	Position models.NotePosition `json:"note_type"`
}

// noteDiff is the result of reconciling existing associations with a
// desired set.
type noteDiff struct {
	toInsert []notePair
	toUpdate []models.FragranceNote
	toDelete []int64 // FragranceNote row ids
}

// reconcileNotes computes the change set between a fragrance's existing
// note associations and the desired ones. Associations present in both
// sets stay, with the position updated when it changed; associations
// only in the existing set are deleted; the rest are inserted. The
// caller applies the diff inside one transaction.
func reconcileNotes(existing []models.FragranceNote, desired []notePair) noteDiff {
	current := make(map[int64]models.FragranceNote, len(existing))
	for _, assoc := range existing {
		current[assoc.NoteID] = assoc
	}

	var diff noteDiff
	seen := make(map[int64]bool, len(desired))
	for _, pair := range desired {
		if seen[pair.NoteID] {
			continue
		}
		seen[pair.NoteID] = true

		assoc, ok := current[pair.NoteID]
		if !ok {
			diff.toInsert = append(diff.toInsert, pair)
			continue
		}
		if assoc.Position != pair.Position {
			assoc.Position = pair.Position
			diff.toUpdate = append(diff.toUpdate, assoc)
		}
	}

	for _, assoc := range existing {
		if !seen[assoc.NoteID] {
			diff.toDelete = append(diff.toDelete, assoc.ID)
		}
	}

	return diff
}
