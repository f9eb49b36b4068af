// Package contentkey derives the storage keys and unlock identifiers shared by all content libraries.
//
// Every library reads the same per-chapter record through DeriveKey, while each delivery mode is
// purchased separately through the identifier returned by DeriveContentID.
package contentkey

import "fmt"

// Mode is a delivery mode of chapter content. Each mode is priced and unlocked independently.
type Mode string

const (
	ModeMCQ     Mode = "MCQ"
	ModeFree    Mode = "FREE"
	ModePremium Mode = "PREMIUM"
	ModeUltra   Mode = "ULTRA"
	ModeVideo   Mode = "VIDEO"
)

const keyPrefix = "nst_content_"

// Valid reports whether m is one of the known delivery modes
func (m Mode) Valid() bool {
	switch m {
	case ModeMCQ, ModeFree, ModePremium, ModeUltra, ModeVideo:
		return true
	}
	return false
}

// IsPDF reports whether m selects one of the PDF links of a record
func (m Mode) IsPDF() bool {
	return m == ModeFree || m == ModePremium || m == ModeUltra
}

// StreamSuffix returns "-{stream}" for senior classes (11 and 12) and an empty string otherwise
func StreamSuffix(classLevel, stream string) string {
	if classLevel == "11" || classLevel == "12" {
		return "-" + stream
	}
	return ""
}

// DeriveKey returns the storage key of a chapter content record:
// nst_content_{board}_{classLevel}{streamSuffix}_{subjectName}_{chapterID}
func DeriveKey(board, classLevel, stream, subjectName, chapterID string) string {
	return fmt.Sprintf("%s%s_%s%s_%s_%s",
		keyPrefix,
		board,
		classLevel,
		StreamSuffix(classLevel, stream),
		subjectName,
		chapterID,
	)
}

// DeriveContentID returns the purchasable unit identifier {chapterID}_{mode}
func DeriveContentID(chapterID string, mode Mode) string {
	return chapterID + "_" + string(mode)
}
