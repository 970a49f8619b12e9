package status

import "github.com/aria-lang/biopm/internal/pattern"

// Record is the plain serializable form of a status.
type Record struct {
	ID         string          `json:"id,omitempty" yaml:"id,omitempty"`
	Status     string          `json:"status" yaml:"status"`
	Score      float64         `json:"score" yaml:"score"`
	Length     int             `json:"length" yaml:"length"`
	Gaps       int             `json:"gaps" yaml:"gaps"`
	NtPM       int             `json:"nt_pm" yaml:"nt_pm"`
	AaPM       *int            `json:"aa_pm" yaml:"aa_pm"`
	Translated bool            `json:"translated" yaml:"translated"`
	Pattern    *pattern.Record `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Record converts the status. AaPM is nil when no translation was done.
func (s Status) Record() Record {
	r := Record{
		Status:     s.category.String(),
		Score:      s.score,
		Length:     s.detail.Length,
		Gaps:       s.counts.Gaps,
		NtPM:       s.counts.NtPM,
		Translated: s.detail.Translated,
	}
	if s.detail.Translated {
		aa := s.counts.AaPM
		r.AaPM = &aa
	}
	if s.detail.Pattern != nil {
		pr := s.detail.Pattern.Record()
		r.Pattern = &pr
	}
	return r
}
