package content

import (
	"encoding/json"
	"math"
	"strconv"
)

// ProgressKind tags which variant a Progress holds.
type ProgressKind int

const (
	ProgressNone ProgressKind = iota
	ProgressChapter
	ProgressEpisode
)

func (k ProgressKind) String() string {
	switch k {
	case ProgressChapter:
		return "chapter"
	case ProgressEpisode:
		return "episode"
	default:
		return "none"
	}
}

// MaxProgress is the exclusive upper bound for any chapter or episode number.
const MaxProgress = 10000

// Progress is a position within a work: a chapter, an episode, or nothing.
// The zero value is NoProgress.
type Progress struct {
	kind  ProgressKind
	value float64
}

// NoProgress returns the empty mark.
func NoProgress() Progress {
	return Progress{}
}

// ChapterMark returns a chapter position. Fractional chapters are kept.
// Values outside (0, MaxProgress) yield NoProgress.
func ChapterMark(n float64) Progress {
	if !InRange(n) {
		return Progress{}
	}
	return Progress{kind: ProgressChapter, value: n}
}

// EpisodeMark returns an episode position, floored to an integer.
// Values outside (0, MaxProgress) yield NoProgress.
func EpisodeMark(n float64) Progress {
	if !InRange(n) {
		return Progress{}
	}
	floored := math.Floor(n)
	if floored <= 0 {
		return Progress{}
	}
	return Progress{kind: ProgressEpisode, value: floored}
}

// MarkFor builds the variant matching the category's counting unit.
func MarkFor(category Category, n float64) Progress {
	if category.Episodic() {
		return EpisodeMark(n)
	}
	return ChapterMark(n)
}

// InRange reports whether n is a plausible chapter or episode number.
func InRange(n float64) bool {
	return !math.IsNaN(n) && n > 0 && n < MaxProgress
}

// Kind returns the variant tag.
func (p Progress) Kind() ProgressKind {
	return p.kind
}

// IsZero reports whether no position was found.
func (p Progress) IsZero() bool {
	return p.kind == ProgressNone
}

// Chapter returns the chapter number when p is a chapter mark.
func (p Progress) Chapter() (float64, bool) {
	if p.kind != ProgressChapter {
		return 0, false
	}
	return p.value, true
}

// Episode returns the episode number when p is an episode mark.
func (p Progress) Episode() (int, bool) {
	if p.kind != ProgressEpisode {
		return 0, false
	}
	return int(p.value), true
}

func (p Progress) String() string {
	switch p.kind {
	case ProgressChapter:
		return "chapter " + strconv.FormatFloat(p.value, 'f', -1, 64)
	case ProgressEpisode:
		return "episode " + strconv.Itoa(int(p.value))
	default:
		return "none"
	}
}

type progressJSON struct {
	Chapter *float64 `json:"chapter,omitempty"`
	Episode *int     `json:"episode,omitempty"`
}

// MarshalJSON renders {"chapter": n}, {"episode": n} or {}.
func (p Progress) MarshalJSON() ([]byte, error) {
	var out progressJSON
	switch p.kind {
	case ProgressChapter:
		v := p.value
		out.Chapter = &v
	case ProgressEpisode:
		v := int(p.value)
		out.Episode = &v
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the MarshalJSON form. A payload carrying both fields
// keeps the episode, matching how callers treat anime records.
func (p *Progress) UnmarshalJSON(data []byte) error {
	var in progressJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch {
	case in.Episode != nil:
		*p = EpisodeMark(float64(*in.Episode))
	case in.Chapter != nil:
		*p = ChapterMark(*in.Chapter)
	default:
		*p = Progress{}
	}
	return nil
}
