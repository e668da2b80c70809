// Package quran holds the static content map of the standard Madani mushaf:
// the fixed 30 juz partitions used for revision bucketing and the finer surah
// section table used by the backward boundary-aware allocator. Both tables are
// built once at init and never mutated.
package quran

import "sort"

// Juz is one of the fixed 1-of-30 page-range partitions.
type Juz struct {
	Number    int    `json:"number"`
	StartPage int    `json:"start_page"`
	EndPage   int    `json:"end_page"`
	Name      string `json:"name"`
}

// Start pages of each juz in the Madani mushaf.
var juzStartPages = [30]int{
	1, 22, 42, 62, 82, 102, 121, 142, 162, 182,
	201, 222, 242, 262, 282, 302, 322, 342, 362, 382,
	402, 422, 440, 462, 482, 502, 522, 542, 562, 582,
}

var juzNames = [30]string{
	"Alif Lam Mim", "Sayaqul", "Tilkal Rusul", "Lan Tanalu", "Wal Muhsanat",
	"La Yuhibbullah", "Wa Iza Samiu", "Wa Lau Annana", "Qalal Malau", "Wa A'lamu",
	"Yatazeroon", "Wa Mamin Da'abat", "Wa Ma Ubarriu", "Rubama", "Subhanallazi",
	"Qal Alam", "Iqtarabat", "Qadd Aflaha", "Wa Qalallazina", "A'man Khalaq",
	"Utlu Ma Oohi", "Wa Manyaqnut", "Wa Mali", "Faman Azlam", "Elahe Yuruddu",
	"Ha'a Meem", "Qala Fama Khatbukum", "Qadd Sami Allah", "Tabarakallazi", "Amma Yatasa'aloon",
}

var juzTable [30]Juz

func init() {
	for i, start := range juzStartPages {
		end := lastPage
		if i+1 < len(juzStartPages) {
			end = juzStartPages[i+1] - 1
		}
		juzTable[i] = Juz{
			Number:    i + 1,
			StartPage: start,
			EndPage:   end,
			Name:      juzNames[i],
		}
	}
}

// AllJuz returns the full juz table in reading order.
func AllJuz() []Juz {
	out := make([]Juz, len(juzTable))
	copy(out, juzTable[:])
	return out
}

// JuzByNumber returns the juz with the given 1-based number.
func JuzByNumber(n int) (Juz, bool) {
	if n < 1 || n > len(juzTable) {
		return Juz{}, false
	}
	return juzTable[n-1], true
}

// JuzForPage locates the juz containing a page via binary search over the
// sorted start boundaries.
func JuzForPage(page int) (Juz, bool) {
	if page < 1 || page > lastPage {
		return Juz{}, false
	}
	i := sort.Search(len(juzTable), func(i int) bool {
		return juzTable[i].EndPage >= page
	})
	return juzTable[i], true
}
