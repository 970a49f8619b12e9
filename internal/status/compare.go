package status

// Compare returns -1, 0 or +1 as a ranks below, equal to or above b.
func Compare(a, b Status) int {
	switch {
	case a.score < b.score:
		return -1
	case a.score > b.score:
		return 1
	}
	return 0
}

// Compare orders s against another status by score.
func (s Status) Compare(other Status) int { return Compare(s, other) }

// Equal reports whether both statuses have the same score.
func (s Status) Equal(other Status) bool { return Compare(s, other) == 0 }

// Less reports whether s ranks below other.
func (s Status) Less(other Status) bool { return Compare(s, other) < 0 }

// LessOrEqual reports whether s does not rank above other.
func (s Status) LessOrEqual(other Status) bool { return Compare(s, other) <= 0 }

// Greater reports whether s ranks above other.
func (s Status) Greater(other Status) bool { return Compare(s, other) > 0 }

// GreaterOrEqual reports whether s does not rank below other.
func (s Status) GreaterOrEqual(other Status) bool { return Compare(s, other) >= 0 }

// Is reports whether s belongs to the named category, ignoring counts.
func (s Status) Is(name string) (bool, error) {
	c, err := ParseCategory(name)
	if err != nil {
		return false, &UnsupportedComparisonError{Value: name, Err: err}
	}
	return s.category == c, nil
}

// CompareTo orders s against a Status, *Status, Category or category name.
// Against a category or name only the category takes part, so every status
// of that category compares equal to it.
func (s Status) CompareTo(other interface{}) (int, error) {
	switch o := other.(type) {
	case Status:
		return Compare(s, o), nil
	case *Status:
		if o == nil {
			return 0, &UnsupportedComparisonError{Value: other}
		}
		return Compare(s, *o), nil
	case Category:
		if !o.Valid() {
			return 0, &UnsupportedComparisonError{Value: other}
		}
		return compareCategory(s.category, o), nil
	case string:
		c, err := ParseCategory(o)
		if err != nil {
			return 0, &UnsupportedComparisonError{Value: other, Err: err}
		}
		return compareCategory(s.category, c), nil
	default:
		return 0, &UnsupportedComparisonError{Value: other}
	}
}

// EqualTo is CompareTo reduced to equality.
func (s Status) EqualTo(other interface{}) (bool, error) {
	n, err := s.CompareTo(other)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func compareCategory(a, b Category) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
