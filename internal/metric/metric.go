package metric

import (
	"fmt"

	"github.com/neox5/statmeta/internal/unit"
)

// Kind defines the statistical semantics of a metric.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindCounter
	KindGauge
)

// String returns the wire form of the kind; KindUnknown renders as "?".
func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	default:
		return "?"
	}
}

// ParseKind converts "counter", "gauge" or "?" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "counter":
		return KindCounter, nil
	case "gauge":
		return KindGauge, nil
	case "?":
		return KindUnknown, nil
	default:
		return KindUnknown, fmt.Errorf("unsupported metric type: %s", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// FallbackName is the reserved registry key returned for unrecognized names.
const FallbackName = "?"

// Descriptor holds the display metadata of a metric.
type Descriptor struct {
	Unit       unit.Name
	UnitSuffix string
	Kind       Kind
}

// Fallback is the descriptor stored under FallbackName.
var Fallback = Descriptor{
	Unit:       unit.Unknown,
	UnitSuffix: unit.UnknownSuffix,
	Kind:       KindUnknown,
}

// Definition is a (name, unit, kind) triple to insert into a registry.
type Definition struct {
	Name string
	Unit unit.Name
	Kind Kind
}
