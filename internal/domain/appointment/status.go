package appointment

import (
	"strings"

	"github.com/medsched/hospital-scheduler/internal/httperr"
)

// ===============================
// Status Vocabularies
// ===============================

// Storage vocabulary — the check constraint on the appointments table.
const (
	StorageScheduled = "scheduled"
	StorageCompleted = "completed"
	StorageNoShow    = "no-show"
	StorageCancelled = "cancelled"
)

// UI vocabulary — what the interface and the API surface speak.
const (
	UIPending   = "pending"
	UIAttended  = "attended"
	UIMissed    = "missed"
	UICancelled = "cancelled"
)

var uiToStorage = map[string]string{
	UIPending:   StorageScheduled,
	UIAttended:  StorageCompleted,
	UIMissed:    StorageNoShow,
	UICancelled: StorageCancelled,
}

var storageToUI = map[string]string{
	StorageScheduled: UIPending,
	StorageCompleted: UIAttended,
	StorageNoShow:    UIMissed,
	StorageCancelled: UICancelled,
}

// ToStorage maps a UI status token to its canonical storage token.
// Lookups are case-insensitive; unknown tokens pass through unchanged
// so an already-canonical value never gets mangled.
func ToStorage(status string) string {
	if s, ok := uiToStorage[strings.ToLower(status)]; ok {
		return s
	}
	return status
}

// ToUI maps a storage status token back to its UI synonym.
func ToUI(status string) string {
	if s, ok := storageToUI[strings.ToLower(status)]; ok {
		return s
	}
	return status
}

// IsStorageStatus reports whether s is one of the four canonical
// storage tokens. Only these may ever be persisted.
func IsStorageStatus(s string) bool {
	_, ok := storageToUI[s]
	return ok
}

// ===============================
// Transition Rules
// ===============================

// Only pending appointments move; attended, missed and cancelled are
// terminal.

func CanTransition(currentStorage, targetUI string) error {
	if ToUI(currentStorage) != UIPending {
		return httperr.ErrBusiness("invalid_state")
	}
	switch strings.ToLower(targetUI) {
	case UIAttended, UIMissed, UICancelled:
		return nil
	}
	return httperr.ErrBusiness("invalid_status")
}

// InitialStatus is the storage status of every newly created appointment.
func InitialStatus() string {
	return StorageScheduled
}
