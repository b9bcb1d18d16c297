package content

// Tier is an unlock group gated by cumulative correct answers
type Tier uint8

const (
	TierUnknown Tier = iota
	TierBasic
	TierDakuten
	TierYoon
)

func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierDakuten:
		return "dakuten"
	case TierYoon:
		return "yoon"
	default:
		return "unknown"
	}
}

var (
	BasicIDs   = idsOf(basicRows)
	DakutenIDs = idsOf(dakutenRows)
	YoonIDs    = idsOf(yoonRows)

	tierByID = func() map[string]Tier {
		m := make(map[string]Tier, len(BasicIDs)+len(DakutenIDs)+len(YoonIDs))
		for _, id := range BasicIDs {
			m[id] = TierBasic
		}
		for _, id := range DakutenIDs {
			m[id] = TierDakuten
		}
		for _, id := range YoonIDs {
			m[id] = TierYoon
		}
		return m
	}()
)

func idsOf(rows []row) []string {
	ids := make([]string, len(rows))
	for i, rw := range rows {
		ids[i] = rw.id
	}
	return ids
}

// TierOf classifies a kana id; ids outside the shipped tables are TierUnknown
func TierOf(id string) Tier {
	return tierByID[id]
}
