package zone

import "github.com/99minutos/delivery-quote/internal/core/domain"

// CrossZoneTable prices trips whose pickup and delivery fall in different zones.
type CrossZoneTable struct {
	fees       map[string]map[string]int64
	defaultFee int64
}

// NewCrossZoneTable creates a table over fees keyed origin → destination.
// defaultFee applies to pairs missing in both directions; when it is not
// positive domain.DefaultCrossZoneFeeNgn is used instead.
func NewCrossZoneTable(fees map[string]map[string]int64, defaultFee int64) *CrossZoneTable {
	return &CrossZoneTable{fees: fees, defaultFee: defaultFee}
}

// Fee returns 0 for equal codes, then the direct entry, then the reverse
// entry, then the default fee.
func (t *CrossZoneTable) Fee(fromCode, toCode string) int64 {
	if fromCode == toCode {
		return 0
	}
	if fee, ok := t.fees[fromCode][toCode]; ok {
		return fee
	}
	if fee, ok := t.fees[toCode][fromCode]; ok {
		return fee
	}
	if t.defaultFee > 0 {
		return t.defaultFee
	}
	return domain.DefaultCrossZoneFeeNgn
}
