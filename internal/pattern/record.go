package pattern

// MutationRecord is the serializable form of a single mutation.
type MutationRecord struct {
	Position  int    `json:"position" yaml:"position"`
	Reference string `json:"reference" yaml:"reference"`
	Query     string `json:"query" yaml:"query"`
	Notation  string `json:"notation" yaml:"notation"`
	Codon     int    `json:"codon,omitempty" yaml:"codon,omitempty"`
}

// Record is the serializable form of a pattern.
type Record struct {
	Translated bool             `json:"translated" yaml:"translated"`
	Mutations  []MutationRecord `json:"mutations" yaml:"mutations"`
	AminoAcids []MutationRecord `json:"amino_acids,omitempty" yaml:"amino_acids,omitempty"`
}

// Record converts the pattern for logging or persistence.
func (p *Pattern) Record() Record {
	r := Record{
		Translated: p.translated,
		Mutations:  make([]MutationRecord, 0, len(p.mutations)),
	}
	for _, m := range p.mutations {
		r.Mutations = append(r.Mutations, MutationRecord{
			Position:  m.Position,
			Reference: string(m.Reference),
			Query:     string(m.Query),
			Notation:  m.String(),
			Codon:     p.codonOf[m.Position],
		})
	}
	if p.translated {
		r.AminoAcids = make([]MutationRecord, 0, len(p.aaMutations))
		for _, aa := range p.aaMutations {
			r.AminoAcids = append(r.AminoAcids, MutationRecord{
				Position:  aa.Codon,
				Reference: string(aa.Reference),
				Query:     string(aa.Query),
				Notation:  aa.String(),
			})
		}
	}
	return r
}
