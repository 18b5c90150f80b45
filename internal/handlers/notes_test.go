package handlers

import (
	"testing"

	"github.com/example/essence/internal/models"
)

func assoc(id, noteID int64, position models.NotePosition) models.FragranceNote {
	return models.FragranceNote{
		BaseModel: models.BaseModel{ID: id},
		NoteID:    noteID,
		Position:  position,
	}
}

func TestReconcileNotesRemovesMissing(t *testing.T) {
	existing := []models.FragranceNote{
		assoc(10, 1, models.NoteTop),
		assoc(11, 2, models.NoteBase),
	}
	desired := []notePair{{NoteID: 1, Position: models.NoteTop}}

	diff := reconcileNotes(existing, desired)

	if len(diff.toInsert) != 0 {
		t.Errorf("expected no inserts, got %v", diff.toInsert)
	}
	if len(diff.toUpdate) != 0 {
		t.Errorf("note 1 kept its position, expected no updates, got %v", diff.toUpdate)
	}
	if len(diff.toDelete) != 1 || diff.toDelete[0] != 11 {
		t.Errorf("expected row 11 deleted, got %v", diff.toDelete)
	}
}

func TestReconcileNotesUpdatesChangedPosition(t *testing.T) {
	existing := []models.FragranceNote{assoc(10, 1, models.NoteTop)}
	desired := []notePair{{NoteID: 1, Position: models.NoteBase}}

	diff := reconcileNotes(existing, desired)

	if len(diff.toUpdate) != 1 {
		t.Fatalf("expected one update, got %v", diff.toUpdate)
	}
	if diff.toUpdate[0].ID != 10 || diff.toUpdate[0].Position != models.NoteBase {
		t.Errorf("unexpected update %+v", diff.toUpdate[0])
	}
	if len(diff.toInsert) != 0 || len(diff.toDelete) != 0 {
		t.Errorf("expected no inserts/deletes, got %v / %v", diff.toInsert, diff.toDelete)
	}
}

func TestReconcileNotesInsertsNew(t *testing.T) {
	existing := []models.FragranceNote{assoc(10, 1, models.NoteTop)}
	desired := []notePair{
		{NoteID: 1, Position: models.NoteTop},
		{NoteID: 5, Position: models.NoteMiddle},
	}

	diff := reconcileNotes(existing, desired)

	if len(diff.toInsert) != 1 || diff.toInsert[0].NoteID != 5 {
		t.Errorf("expected note 5 inserted, got %v", diff.toInsert)
	}
}

func TestReconcileNotesEmptyDesiredDeletesAll(t *testing.T) {
	existing := []models.FragranceNote{
		assoc(10, 1, models.NoteTop),
		assoc(11, 2, models.NoteMiddle),
	}

	diff := reconcileNotes(existing, nil)

	if len(diff.toDelete) != 2 {
		t.Errorf("expected both rows deleted, got %v", diff.toDelete)
	}
}

func TestReconcileNotesIgnoresDuplicatePairs(t *testing.T) {
	desired := []notePair{
		{NoteID: 3, Position: models.NoteTop},
		{NoteID: 3, Position: models.NoteBase},
	}

	diff := reconcileNotes(nil, desired)

	if len(diff.toInsert) != 1 {
		t.Fatalf("expected one insert for duplicated note id, got %v", diff.toInsert)
	}
	if diff.toInsert[0].Position != models.NoteTop {
		t.Errorf("first occurrence should win, got %v", diff.toInsert[0].Position)
	}
}
