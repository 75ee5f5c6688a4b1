package ir

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		NumberType: "Number",
		NullType:   "Null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}
