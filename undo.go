package gui

// undoRecordCap and undoCharCap are the default bounds from §4.6's Text
// Editor: "99 records / 999 codepoints" for the undo ring. Past either
// limit, the oldest record is dropped to make room for the newest.
const (
	undoRecordCap = 99
	undoCharCap   = 999
)

// undoRecord captures one edit as a delta rather than a whole-string
// snapshot (§4.6, §9 Design Notes): where the edit happened, how many
// codepoints were inserted, how many were deleted, and the deleted
// codepoints' offset into the shared chars ring so they can be
// replayed on Undo.
type undoRecord struct {
	where         int
	insertLength  int
	deleteLength  int
	charStorageOffset int
}

// undoState is a bounded circular undo/redo stack over codepoint deltas,
// replacing state.go's InputTextState.UndoStack (which keeps whole string
// copies — workable for short labels but not the unbounded text buffers
// the Text Editor widget is specified to support).
type undoState struct {
	records    []undoRecord
	chars      []rune // ring buffer of deleted codepoints, indexed by charStorageOffset
	undoPoint  int     // number of valid records currently undoable
	redoPoint  int     // index in records where redo history starts (records[redoPoint:] are redo-able)
	charPoint  int     // write cursor into chars
}

func newUndoState() *undoState {
	return &undoState{
		records: make([]undoRecord, 0, undoRecordCap),
		chars:   make([]rune, 0, undoCharCap),
	}
}

// hasRoom reports whether another record of the given delete length fits
// without needing eviction, per the bounded-ring contract.
func (u *undoState) hasRoom(deleteLength int) bool {
	return u.undoPoint < undoRecordCap && u.charPoint+deleteLength <= undoCharCap
}

// discardUndo drops the oldest undo record to make room, shifting
// charStorageOffset for everything after it the way a true ring buffer
// would — implemented here as a slice compaction since Go slices make
// that cheap and the record count is small (<=99).
func (u *undoState) discardUndo() {
	if len(u.records) == 0 {
		return
	}
	removed := u.records[0]
	u.records = u.records[1:]
	if u.undoPoint > 0 {
		u.undoPoint--
	}
	if removed.deleteLength > 0 {
		u.chars = u.chars[removed.deleteLength:]
		for i := range u.records {
			u.records[i].charStorageOffset -= removed.deleteLength
		}
		u.charPoint -= removed.deleteLength
	}
}

// pushRecord records an edit, evicting the oldest record(s) first if the
// ring is full. deletedRunes is nil for pure-insert edits.
func (u *undoState) pushRecord(where, insertLength int, deletedRunes []rune) {
	for !u.hasRoom(len(deletedRunes)) && len(u.records) > 0 {
		u.discardUndo()
	}
	rec := undoRecord{
		where:             where,
		insertLength:      insertLength,
		deleteLength:       len(deletedRunes),
		charStorageOffset: u.charPoint,
	}
	if len(deletedRunes) > 0 {
		u.chars = append(u.chars, deletedRunes...)
		u.charPoint += len(deletedRunes)
	}
	// A new edit truncates any redo history, mirroring InputTextState's
	// existing "truncate forward history on new edit" behavior.
	u.records = u.records[:u.undoPoint]
	u.records = append(u.records, rec)
	u.undoPoint = len(u.records)
	u.redoPoint = len(u.records)
}

// undo pops the most recent record and returns it along with the deleted
// codepoints to reinsert at `where`, or ok=false if there is nothing to
// undo. Does not itself mutate the text buffer; callers (texteditor.go)
// apply the inverse edit.
func (u *undoState) undo() (rec undoRecord, deleted []rune, ok bool) {
	if u.undoPoint == 0 {
		return undoRecord{}, nil, false
	}
	u.undoPoint--
	rec = u.records[u.undoPoint]
	if rec.deleteLength > 0 {
		deleted = append([]rune(nil), u.chars[rec.charStorageOffset:rec.charStorageOffset+rec.deleteLength]...)
	}
	return rec, deleted, true
}

// redo replays the next record after the last undo, or ok=false if there
// is nothing to redo.
func (u *undoState) redo() (rec undoRecord, ok bool) {
	if u.undoPoint >= u.redoPoint {
		return undoRecord{}, false
	}
	rec = u.records[u.undoPoint]
	u.undoPoint++
	return rec, true
}

func (u *undoState) canUndo() bool { return u.undoPoint > 0 }
func (u *undoState) canRedo() bool { return u.undoPoint < u.redoPoint }
