// Package langdetect classifies short metadata strings into the small set
// of languages metaloc can treat as a translation source.
//
// This is a character-set heuristic, not a language-identification model.
// Callers must handle Auto ("could not decide") by translating anyway,
// never by skipping the string.
package langdetect

import "strings"

// Lang is a language tag, either detected from source text or used as a
// translation target.
type Lang string

const (
	// ZhCN is simplified Chinese.
	ZhCN Lang = "zh-CN"
	// ZhTW is traditional Chinese.
	ZhTW Lang = "zh-TW"
	// En is English.
	En Lang = "en"
	// Auto means the heuristic could not decide.
	Auto Lang = "auto"
)

// traditionalOnly is a hand-picked set of characters that appear in the
// traditional Chinese orthography but not the simplified one. The set is
// deliberately small and frozen: it is a cheap hint, and changing it
// changes which records are labelled zh-CN vs zh-TW.
const traditionalOnly = "繁體臺灣們這發東車書長門馬鳥龍萬與來時個裡說對開關點現實樣經學證國圖會動務處廣應讀變讓"

// Detect classifies text. Rules are ordered, first match wins: Han
// characters (possibly mixed with plain ASCII) mean Chinese, zh-TW when a
// traditional-only character is present and zh-CN otherwise; all-ASCII
// text including the empty string means en. Everything else, including
// text mixing Han with a third script, is Auto.
func Detect(text string) Lang {
	if containsHan(text) {
		if !hanOrASCIIOnly(text) {
			return Auto
		}
		if strings.ContainsAny(text, traditionalOnly) {
			return ZhTW
		}
		return ZhCN
	}
	if isASCII(text) {
		return En
	}
	return Auto
}

// containsHan reports whether text contains a character from the common
// CJK Unified Ideographs block.
func containsHan(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

// hanOrASCIIOnly reports whether every rune of s is either a Han
// character or plain ASCII.
func hanOrASCIIOnly(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			continue
		}
		if !isASCIIRune(r) {
			return false
		}
	}
	return true
}

// isASCII reports whether s consists only of printable ASCII and
// whitespace. The empty string qualifies.
func isASCII(s string) bool {
	for _, r := range s {
		if !isASCIIRune(r) {
			return false
		}
	}
	return true
}

func isASCIIRune(r rune) bool {
	switch {
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x21 && r <= 0x7E:
		return true
	}
	return false
}
