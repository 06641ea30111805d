package trace

// CoefficientTrace collects coefficient records in evaluation order.
type CoefficientTrace struct {
	Records []CoefficientRecord
	index   map[string]int
}

// NewCoefficientTrace creates a CoefficientTrace ready for recording.
func NewCoefficientTrace() *CoefficientTrace {
	return &CoefficientTrace{
		Records: make([]CoefficientRecord, 0),
		index:   make(map[string]int),
	}
}

// Record appends a coefficient record. A later record with the same key
// becomes the lookup target; both stay in Records.
func (ct *CoefficientTrace) Record(record CoefficientRecord) {
	ct.index[record.Key()] = len(ct.Records)
	ct.Records = append(ct.Records, record)
}

// Get returns the most recent record stored under key ("bh.c0", "i.s2", ...).
func (ct *CoefficientTrace) Get(key string) (CoefficientRecord, bool) {
	if ct == nil {
		return CoefficientRecord{}, false
	}
	i, ok := ct.index[key]
	if !ok {
		return CoefficientRecord{}, false
	}
	return ct.Records[i], true
}

// Family returns the records belonging to f, in order.
func (ct *CoefficientTrace) Family(f Family) []CoefficientRecord {
	if ct == nil {
		return nil
	}
	var out []CoefficientRecord
	for _, r := range ct.Records {
		if r.Family == f {
			out = append(out, r)
		}
	}
	return out
}
