package quran

import "sort"

const lastPage = 604

// Section is a named content span with an inclusive page range. Sections are
// non-overlapping and cover every page exactly once; short surahs sharing a
// page are merged into one section so the invariant holds. Index is 1-based
// in reading order.
type Section struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	StartPage int    `json:"start_page"`
	EndPage   int    `json:"end_page"`
}

type surahStart struct {
	name string
	page int
}

// Start pages of each surah in the Madani mushaf.
var surahStarts = []surahStart{
	{"Al-Fatiha", 1}, {"Al-Baqarah", 2}, {"Aal-E-Imran", 50}, {"An-Nisa", 77},
	{"Al-Ma'idah", 106}, {"Al-An'am", 128}, {"Al-A'raf", 151}, {"Al-Anfal", 177},
	{"At-Tawbah", 187}, {"Yunus", 208}, {"Hud", 221}, {"Yusuf", 235},
	{"Ar-Ra'd", 249}, {"Ibrahim", 255}, {"Al-Hijr", 262}, {"An-Nahl", 267},
	{"Al-Isra", 282}, {"Al-Kahf", 293}, {"Maryam", 305}, {"Ta-Ha", 312},
	{"Al-Anbiya", 322}, {"Al-Hajj", 332}, {"Al-Mu'minun", 342}, {"An-Nur", 350},
	{"Al-Furqan", 359}, {"Ash-Shu'ara", 367}, {"An-Naml", 377}, {"Al-Qasas", 385},
	{"Al-Ankabut", 396}, {"Ar-Rum", 404}, {"Luqman", 411}, {"As-Sajdah", 415},
	{"Al-Ahzab", 418}, {"Saba", 428}, {"Fatir", 434}, {"Ya-Sin", 440},
	{"As-Saffat", 446}, {"Sad", 453}, {"Az-Zumar", 458}, {"Ghafir", 467},
	{"Fussilat", 477}, {"Ash-Shura", 483}, {"Az-Zukhruf", 489}, {"Ad-Dukhan", 496},
	{"Al-Jathiyah", 499}, {"Al-Ahqaf", 502}, {"Muhammad", 507}, {"Al-Fath", 511},
	{"Al-Hujurat", 515}, {"Qaf", 518}, {"Adh-Dhariyat", 520}, {"At-Tur", 523},
	{"An-Najm", 526}, {"Al-Qamar", 528}, {"Ar-Rahman", 531}, {"Al-Waqi'ah", 534},
	{"Al-Hadid", 537}, {"Al-Mujadila", 542}, {"Al-Hashr", 545}, {"Al-Mumtahanah", 549},
	{"As-Saff", 551}, {"Al-Jumu'ah", 553}, {"Al-Munafiqun", 554}, {"At-Taghabun", 556},
	{"At-Talaq", 558}, {"At-Tahrim", 560}, {"Al-Mulk", 562}, {"Al-Qalam", 564},
	{"Al-Haqqah", 566}, {"Al-Ma'arij", 568}, {"Nuh", 570}, {"Al-Jinn", 572},
	{"Al-Muzzammil", 574}, {"Al-Muddaththir", 575}, {"Al-Qiyamah", 577}, {"Al-Insan", 578},
	{"Al-Mursalat", 580}, {"An-Naba", 582}, {"An-Nazi'at", 583}, {"Abasa", 585},
	{"At-Takwir", 586}, {"Al-Infitar", 587}, {"Al-Mutaffifin", 587}, {"Al-Inshiqaq", 589},
	{"Al-Buruj", 590}, {"At-Tariq", 591}, {"Al-A'la", 591}, {"Al-Ghashiyah", 592},
	{"Al-Fajr", 593}, {"Al-Balad", 594}, {"Ash-Shams", 595}, {"Al-Layl", 595},
	{"Ad-Duha", 596}, {"Ash-Sharh", 596}, {"At-Tin", 597}, {"Al-Alaq", 597},
	{"Al-Qadr", 598}, {"Al-Bayyinah", 598}, {"Az-Zalzalah", 599}, {"Al-Adiyat", 599},
	{"Al-Qari'ah", 600}, {"At-Takathur", 600}, {"Al-Asr", 601}, {"Al-Humazah", 601},
	{"Al-Fil", 601}, {"Quraysh", 602}, {"Al-Ma'un", 602}, {"Al-Kawthar", 602},
	{"Al-Kafirun", 603}, {"An-Nasr", 603}, {"Al-Masad", 603}, {"Al-Ikhlas", 604},
	{"Al-Falaq", 604}, {"An-Nas", 604},
}

var sectionTable []Section

func init() {
	sectionTable = buildSections(surahStarts)
}

// buildSections collapses the surah start list into non-overlapping inclusive
// page ranges. Surahs that share a page with the previous section are merged
// under a combined name so the table stays exhaustive over 1..lastPage.
func buildSections(starts []surahStart) []Section {
	sections := make([]Section, 0, len(starts))
	for i, s := range starts {
		end := lastPage
		if i+1 < len(starts) {
			end = starts[i+1].page - 1
		}
		if end < s.page {
			end = s.page
		}
		if n := len(sections); n > 0 && s.page <= sections[n-1].EndPage {
			sections[n-1].Name += " / " + s.name
			if end > sections[n-1].EndPage {
				sections[n-1].EndPage = end
			}
			continue
		}
		sections = append(sections, Section{
			Index:     len(sections) + 1,
			Name:      s.name,
			StartPage: s.page,
			EndPage:   end,
		})
	}
	return sections
}

// Sections returns the section table in reading order.
func Sections() []Section {
	out := make([]Section, len(sectionTable))
	copy(out, sectionTable)
	return out
}

// SectionByIndex returns the section with the given 1-based index.
func SectionByIndex(i int) (Section, bool) {
	if i < 1 || i > len(sectionTable) {
		return Section{}, false
	}
	return sectionTable[i-1], true
}

// SectionForPage locates the section containing a page. Fractional positions
// resolve to the section of their integer page.
func SectionForPage(page float64) (Section, bool) {
	p := int(page)
	if p < 1 || p > lastPage {
		return Section{}, false
	}
	i := sort.Search(len(sectionTable), func(i int) bool {
		return sectionTable[i].EndPage >= p
	})
	return sectionTable[i], true
}

// NextBackward returns the section that follows sec in backward traversal
// order, which is the previous section in reading order. ok is false at the
// front of the mushaf.
func NextBackward(sec Section) (Section, bool) {
	if sec.Index <= 1 {
		return Section{}, false
	}
	return sectionTable[sec.Index-2], true
}

// Contains reports whether a position lies inside the section's page range.
func (s Section) Contains(pos float64) bool {
	return pos >= float64(s.StartPage) && pos < float64(s.EndPage)+1
}

// PagesFrom returns the pages remaining in the section from pos to its end.
func (s Section) PagesFrom(pos float64) float64 {
	return float64(s.EndPage) - pos + 1
}
