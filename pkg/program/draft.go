package program

import (
	"sort"
	"strings"

	"github.com/samatva/samatva/internal/validation"
	"github.com/samatva/samatva/pkg/asset"
)

// DraftList is the in-memory working list the builder edits before a save.
// Drafts carry no ids; ids are assigned by the store when the full set is
// persisted.
type DraftList struct {
	items []Item
}

func NewDraftList(items []Item) *DraftList {
	return &DraftList{items: append([]Item(nil), items...)}
}

// AddItem appends a draft to the working list.
func (l *DraftList) AddItem(draft Item) {
	l.items = append(l.items, draft)
}

// EditItem replaces the draft at the given position. It reports whether the
// index was in range; out-of-range edits leave the list untouched.
func (l *DraftList) EditItem(index int, draft Item) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items[index] = draft
	return true
}

// RemoveItem removes the draft at the given position. It reports whether the
// index was in range.
func (l *DraftList) RemoveItem(index int) bool {
	if index < 0 || index >= len(l.items) {
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return true
}

func (l *DraftList) Len() int {
	return len(l.items)
}

// Items returns the drafts in insertion order, which is also the order the
// batch insert persists them in.
func (l *DraftList) Items() []Item {
	return append([]Item(nil), l.items...)
}

// Display returns the drafts sorted by day then sequence, the order the
// builder presents them in. Sorting here is a view concern only.
func (l *DraftList) Display() []Item {
	items := l.Items()
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DayNo != items[j].DayNo {
			return items[i].DayNo < items[j].DayNo
		}
		return items[i].SequenceNo < items[j].SequenceNo
	})
	return items
}

// ValidateItem checks one draft against the program's duration before it
// enters the working list.
func ValidateItem(draft Item, programDuration int) error {
	if !asset.ValidType(draft.Asset.Type) {
		return validation.NewError("assetType", "is not a known asset type")
	}
	if draft.Asset.Id == "" {
		return validation.NewError("assetId", "is required")
	}
	if draft.DayNo < 1 || draft.DayNo > programDuration {
		return validation.NewError("dayNo", "day number out of range")
	}
	if draft.SequenceNo < 1 {
		return validation.NewError("sequenceNo", "must be positive")
	}
	if strings.TrimSpace(draft.Title) == "" {
		return validation.NewError("title", "is required")
	}
	return nil
}
